package timesheet

import "errors"

// Timesheet domain errors
var (
	// Engine errors
	ErrInvalidInterval   = errors.New("interval ends before it starts after midnight adjustment")
	ErrUnknownDataSource = errors.New("unknown timesheet data source")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("payroll snapshot not found")
	ErrEmptyComputation = errors.New("nothing to snapshot: computation produced no rows")
)
