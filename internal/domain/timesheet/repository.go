package timesheet

import (
	"context"
)

// SnapshotRepository persists saved payroll computations. Rows are stored in
// their wire form and returned exactly as written.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot PayrollSnapshot) (PayrollSnapshot, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollSnapshot, error)
	ListByCompany(ctx context.Context, companyID string) ([]PayrollSnapshot, error)
}
