package leave

import "time"

// ApprovedLeave is one approved leave day for an employee. The leave
// subsystem that approves requests is a separate service; the engine only
// consumes the resulting (employee, date) set.
type ApprovedLeave struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	LeaveType  string
}

// Calendar indexes approved leave by employee and day.
type Calendar map[string]map[string]ApprovedLeave

func NewCalendar(leaves []ApprovedLeave) Calendar {
	cal := make(Calendar)
	for _, l := range leaves {
		key := l.Date.Format("2006-01-02")
		if cal[l.EmployeeID] == nil {
			cal[l.EmployeeID] = make(map[string]ApprovedLeave)
		}
		cal[l.EmployeeID][key] = l
	}
	return cal
}

// Lookup returns the approved leave for an employee on a date, if any.
func (c Calendar) Lookup(employeeID string, date time.Time) (ApprovedLeave, bool) {
	byDay, ok := c[employeeID]
	if !ok {
		return ApprovedLeave{}, false
	}
	l, ok := byDay[date.Format("2006-01-02")]
	return l, ok
}
