package payslip

import "time"

// Slip is a rendered payment slip for a paid payroll month. Only published
// slips are visible to the employee.
type Slip struct {
	ID          string
	EmployeeID  string
	PayrollID   string
	Month       string
	FilePath    string
	IsPublished bool
	GeneratedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
