package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// ListByPeriod implements shift.ShiftRepository.
func (s *shiftRepository) ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, company_id, date, start_minutes, end_minutes,
			   spans_next_day, is_day_off, total_hours, night_hours,
			   created_at, updated_at
		FROM shifts
		WHERE company_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		if err := rows.Scan(
			&sh.ID, &sh.EmployeeID, &sh.CompanyID, &sh.Date,
			&sh.Start, &sh.End, &sh.SpansNextDay, &sh.IsDayOff,
			&sh.TotalHours, &sh.NightHours,
			&sh.CreatedAt, &sh.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}
