package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// ListApprovedByPeriod implements leave.LeaveRepository. Multi-day requests
// are stored one row per covered day, so the range filter is a plain BETWEEN.
func (l *leaveRepository) ListApprovedByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]leave.ApprovedLeave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, company_id, date, leave_type
		FROM approved_leaves
		WHERE company_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.ApprovedLeave
	for rows.Next() {
		var al leave.ApprovedLeave
		if err := rows.Scan(&al.ID, &al.EmployeeID, &al.CompanyID, &al.Date, &al.LeaveType); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave: %w", err)
		}
		leaves = append(leaves, al)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approved leaves: %w", err)
	}

	return leaves, nil
}
