package leave

import "time"

// LeaveStatus enum
type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// LeaveType enum. Only paid leave contributes to payable days.
type LeaveType string

const (
	TypePaid   LeaveType = "paid"
	TypeUnpaid LeaveType = "unpaid"
)

// LeaveApplication covers an inclusive [FromDate, ToDate] range. Once
// approved it is immutable for payroll purposes.
type LeaveApplication struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Type       LeaveType
	Status     LeaveStatus
	Reason     *string
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
