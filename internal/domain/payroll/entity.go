package payroll

import (
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// PayStatus enum. A payroll row is only ever written as "paid"; "unpaid" is a
// derived state meaning no row exists for that employee/month.
type PayStatus string

const (
	StatusPaid   PayStatus = "paid"
	StatusUnpaid PayStatus = "unpaid"
)

// Payroll is one immutable pay-run record. At most one row exists per
// (employee_id, month) pair; the database enforces this with a unique index.
type Payroll struct {
	ID              string
	EmployeeID      string
	Month           string // "YYYY-MM"
	PaidDays        int
	Earnings        []salary.Component
	Deductions      []salary.Component
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          PayStatus
	PaidAt          time.Time
	PaymentMode     string
	TransactionID   string
	CreatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// Figures is the computed payable result for one employee and month, before
// any persistence.
type Figures struct {
	EmployeeID      string
	PayableDays     int
	PresentDays     int
	PaidLeaveDays   int
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Earnings        []salary.Component
	Deductions      []salary.Component
}
