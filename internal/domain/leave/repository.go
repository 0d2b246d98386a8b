package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	ListApprovedByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]ApprovedLeave, error)
}
