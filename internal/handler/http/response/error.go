package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		// No computation can classify a single day without the night
		// window and weekend set, so the whole request is rejected.
		UnprocessableEntity(w, "Work policy is not configured for this company")
	case errors.Is(err, policy.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")
	case errors.Is(err, policy.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrUnknownDataSource):
		BadRequest(w, "Unknown data source", nil)
	case errors.Is(err, timesheet.ErrSnapshotNotFound):
		NotFound(w, "Payroll snapshot not found")
	case errors.Is(err, timesheet.ErrEmptyComputation):
		UnprocessableEntity(w, "Nothing to snapshot: the computation produced no rows")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
