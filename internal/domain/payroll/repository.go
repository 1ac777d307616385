package payroll

import "context"

type PayrollRepository interface {
	// Create inserts one pay-run row. Returns ErrAlreadyPaid when a row for
	// the same (employee_id, month) already exists; the unique index makes
	// this safe under concurrent commits.
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (Payroll, error)
	ListByMonth(ctx context.Context, month string) ([]Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	CountPaidByMonth(ctx context.Context, month string) (int64, error)
}
