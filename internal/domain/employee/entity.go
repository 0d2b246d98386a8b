package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

// Employee carries the fields the timesheet engine reads. Daily and weekly
// hour overrides take precedence over the company policy targets.
type Employee struct {
	ID                      string
	CompanyID               string
	EmployeeCode            string
	FullName                string
	HireDate                time.Time
	ResignationDate         *time.Time
	EmploymentStatus        EmploymentStatus
	DailyWorkHoursOverride  *decimal.Decimal
	WeeklyWorkHoursOverride *decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}
