package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
}
