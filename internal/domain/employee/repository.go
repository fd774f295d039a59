package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByClockNumber(ctx context.Context, clockNumber string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
