package employee

import "context"

type EmployeeService interface {
	Onboard(ctx context.Context, req OnboardEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	Deactivate(ctx context.Context, id string) error
}
