package payslip

import "errors"

var (
	ErrSlipNotFound   = errors.New("payment slip not found")
	ErrSlipExists     = errors.New("payment slip already generated for this month")
	ErrPayrollNotPaid = errors.New("payroll is not paid for this month")
)
