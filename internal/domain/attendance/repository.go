package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, record Attendance) error
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)
	HasCheckedInToday(ctx context.Context, employeeID string, date string, companyID string) (bool, error)
	// ListByPeriod returns records anchored inside [from, to] inclusive,
	// including incomplete ones.
	ListByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]Attendance, error)
	// GetStaleOpenSessions returns open sessions older than the given number of days.
	GetStaleOpenSessions(ctx context.Context, olderThanDays int) ([]Attendance, error)
}
