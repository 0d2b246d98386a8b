package timesheet

import (
	"context"
)

type TimesheetService interface {
	// ComputeMonth fetches an immutable input snapshot and runs the pure
	// classification pipeline for every active employee. No side effects.
	ComputeMonth(ctx context.Context, req ComputeTimesheetRequest) ([]EmployeePayroll, error)

	// SaveSnapshot computes the requested month and persists the result
	// verbatim. Saving is always an explicit action, never implicit.
	SaveSnapshot(ctx context.Context, req SaveSnapshotRequest) (PayrollSnapshot, error)

	GetSnapshot(ctx context.Context, id string) (PayrollSnapshot, error)
	ListSnapshots(ctx context.Context) ([]PayrollSnapshot, error)
}
