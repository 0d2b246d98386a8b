package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
)

type snapshotRepository struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) timesheet.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Create implements timesheet.SnapshotRepository. Rows are stored as JSONB
// in the snapshot wire form and never recomputed on read.
func (s *snapshotRepository) Create(ctx context.Context, snapshot timesheet.PayrollSnapshot) (timesheet.PayrollSnapshot, error) {
	q := GetQuerier(ctx, s.db)

	rows := make([]timesheet.EmployeePayrollSnapshot, 0, len(snapshot.Rows))
	for _, r := range snapshot.Rows {
		rows = append(rows, timesheet.MarshalPayroll(r))
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return timesheet.PayrollSnapshot{}, fmt.Errorf("failed to encode snapshot rows: %w", err)
	}

	query := `
		INSERT INTO payroll_snapshots (id, company_id, year, month, source, rows, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		snapshot.ID,
		snapshot.CompanyID,
		snapshot.Year,
		int(snapshot.Month),
		string(snapshot.Source),
		payload,
		snapshot.CreatedBy,
	).Scan(&snapshot.CreatedAt)

	if err != nil {
		return timesheet.PayrollSnapshot{}, fmt.Errorf("failed to create payroll snapshot: %w", err)
	}

	return snapshot, nil
}

// GetByID implements timesheet.SnapshotRepository.
func (s *snapshotRepository) GetByID(ctx context.Context, id string, companyID string) (timesheet.PayrollSnapshot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, company_id, year, month, source, rows, created_by, created_at
		FROM payroll_snapshots
		WHERE id = $1
		  AND company_id = $2
	`

	var snapshot timesheet.PayrollSnapshot
	var payload []byte
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&snapshot.ID, &snapshot.CompanyID, &snapshot.Year, &snapshot.Month,
		&snapshot.Source, &payload, &snapshot.CreatedBy, &snapshot.CreatedAt,
	)

	if err != nil {
		return timesheet.PayrollSnapshot{}, fmt.Errorf("failed to get payroll snapshot: %w", err)
	}

	if snapshot.Rows, err = decodeSnapshotRows(payload); err != nil {
		return timesheet.PayrollSnapshot{}, err
	}

	return snapshot, nil
}

// ListByCompany implements timesheet.SnapshotRepository.
func (s *snapshotRepository) ListByCompany(ctx context.Context, companyID string) ([]timesheet.PayrollSnapshot, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, company_id, year, month, source, rows, created_by, created_at
		FROM payroll_snapshots
		WHERE company_id = $1
		ORDER BY year DESC, month DESC, created_at DESC
	`

	sqlRows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll snapshots: %w", err)
	}
	defer sqlRows.Close()

	var snapshots []timesheet.PayrollSnapshot
	for sqlRows.Next() {
		var snapshot timesheet.PayrollSnapshot
		var payload []byte
		if err := sqlRows.Scan(
			&snapshot.ID, &snapshot.CompanyID, &snapshot.Year, &snapshot.Month,
			&snapshot.Source, &payload, &snapshot.CreatedBy, &snapshot.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll snapshot: %w", err)
		}
		if snapshot.Rows, err = decodeSnapshotRows(payload); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll snapshots: %w", err)
	}

	return snapshots, nil
}

func decodeSnapshotRows(payload []byte) ([]timesheet.EmployeePayroll, error) {
	var wire []timesheet.EmployeePayrollSnapshot
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot rows: %w", err)
	}

	rows := make([]timesheet.EmployeePayroll, 0, len(wire))
	for _, w := range wire {
		row, err := timesheet.UnmarshalPayroll(w)
		if err != nil {
			return nil, fmt.Errorf("failed to decode snapshot row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
