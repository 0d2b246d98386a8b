package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) policy.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByPeriod implements policy.HolidayRepository.
func (h *holidayRepository) ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]policy.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, is_half_day, half_day_work_hours, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []policy.Holiday
	for rows.Next() {
		var hol policy.Holiday
		if err := rows.Scan(
			&hol.ID, &hol.CompanyID, &hol.Date, &hol.Name,
			&hol.IsHalfDay, &hol.HalfDayWorkHours,
			&hol.CreatedAt, &hol.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements policy.HolidayRepository. One holiday per company/date.
func (h *holidayRepository) Create(ctx context.Context, holiday policy.Holiday) (policy.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (company_id, date, name, is_half_day, half_day_work_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		holiday.CompanyID,
		holiday.Date,
		holiday.Name,
		holiday.IsHalfDay,
		holiday.HalfDayWorkHours,
	).Scan(&holiday.ID, &holiday.CreatedAt, &holiday.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return policy.Holiday{}, policy.ErrHolidayExists
		}
		return policy.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// Delete implements policy.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, h.db)

	query := `
		DELETE FROM holidays
		WHERE id = $1
		  AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return policy.ErrHolidayNotFound
	}

	return nil
}
