package payslip

import "context"

type SlipRepository interface {
	Create(ctx context.Context, s Slip) (Slip, error)
	GetByID(ctx context.Context, id string) (Slip, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (Slip, error)
	ListByEmployee(ctx context.Context, employeeID string, publishedOnly bool) ([]Slip, error)
	SetPublished(ctx context.Context, id string, published bool) (Slip, error)
}
