package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]Employee, error)
}
