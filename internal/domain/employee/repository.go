package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)
	CountActive(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status EmployeeStatus) error
}
