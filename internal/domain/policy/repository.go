package policy

import (
	"context"
	"time"
)

type PolicyRepository interface {
	GetByCompany(ctx context.Context, companyID string) (WorkPolicy, error)
	Upsert(ctx context.Context, p WorkPolicy) (WorkPolicy, error)
}

type HolidayRepository interface {
	ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
}
