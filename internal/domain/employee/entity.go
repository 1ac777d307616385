package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus enum
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
)

// Employee is the HR master record. AccountNumber and IFSCCode hold
// field-level encrypted values; they are only decrypted at the projection
// boundary, never in queries.
type Employee struct {
	ID                 string
	UserID             string
	Name               string
	Email              string
	Phone              *string
	Department         *string
	Designation        *string
	JoiningDate        time.Time
	Status             EmployeeStatus
	CTC                decimal.Decimal
	PaymentMethod      *string
	AccountHolderName  *string
	BankName           *string
	AccountNumber      *string
	IFSCCode           *string
	ProfilePicturePath *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
