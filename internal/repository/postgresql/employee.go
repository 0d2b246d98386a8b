package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, employee_code, full_name, hire_date, resignation_date,
			   employment_status, daily_work_hours_override, weekly_work_hours_override,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
		  AND company_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
		&emp.HireDate, &emp.ResignationDate, &emp.EmploymentStatus,
		&emp.DailyWorkHoursOverride, &emp.WeeklyWorkHoursOverride,
		&emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListActiveByCompany implements employee.EmployeeRepository.
func (e *employeeRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, employee_code, full_name, hire_date, resignation_date,
			   employment_status, daily_work_hours_override, weekly_work_hours_override,
			   created_at, updated_at
		FROM employees
		WHERE company_id = $1
		  AND employment_status = 'active'
		  AND (resignation_date IS NULL OR resignation_date > NOW())
		ORDER BY full_name, id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
			&emp.HireDate, &emp.ResignationDate, &emp.EmploymentStatus,
			&emp.DailyWorkHoursOverride, &emp.WeeklyWorkHoursOverride,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
