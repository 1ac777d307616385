package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus enum
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
)

type Claim struct {
	ID          string
	EmployeeID  string
	Category    string
	Description *string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	ReceiptPath *string
	Status      ClaimStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}
