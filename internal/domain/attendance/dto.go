package attendance

import (
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Note *string `json:"note"`
}

type ClockOutRequest struct {
	Note *string `json:"note"`
}

type ListAttendanceFilter struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (f *ListAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, err := time.Parse("2006-01-02", f.From); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must use the YYYY-MM-DD format",
		})
	}

	if _, err := time.Parse("2006-01-02", f.To); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must use the YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time"`
	Incomplete   bool    `json:"incomplete"`
	Note         *string `json:"note,omitempty"`
}

func MapToResponse(a Attendance) AttendanceResponse {
	var employeeName string
	if a.EmployeeName != nil {
		employeeName = *a.EmployeeName
	}

	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date.Format("2006-01-02"),
		ClockInTime:  timePtrToString(a.ClockIn),
		ClockOutTime: timePtrToString(a.ClockOut),
		Incomplete:   a.ClockIn == nil || a.ClockOut == nil,
		Note:         a.Note,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
