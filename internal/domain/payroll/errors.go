package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrAlreadyPaid     = errors.New("payroll already paid for this employee and month")
	ErrFutureMonth     = errors.New("future months are not allowed")
	// ErrZeroWorkingDays marks a month whose working-day count is zero (all
	// days are holidays). The engine treats it as a zero payout, not a hard
	// failure.
	ErrZeroWorkingDays = errors.New("no working days in month")
)
