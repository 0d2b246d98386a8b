package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// ListByPeriod returns shifts dated inside [from, to] inclusive.
	ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]Shift, error)
}
