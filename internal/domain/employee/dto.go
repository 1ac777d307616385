package employee

import (
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type OnboardEmployeeRequest struct {
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Password          string          `json:"password"`
	Phone             *string         `json:"phone,omitempty"`
	Department        *string         `json:"department,omitempty"`
	Designation       *string         `json:"designation,omitempty"`
	JoiningDate       string          `json:"joining_date"`
	CTC               decimal.Decimal `json:"ctc"`
	PaymentMethod     *string         `json:"payment_method,omitempty"`
	AccountHolderName *string         `json:"account_holder_name,omitempty"`
	BankName          *string         `json:"bank_name,omitempty"`
	AccountNumber     *string         `json:"account_number,omitempty"`
	IFSCCode          *string         `json:"ifsc_code,omitempty"`
}

func (r *OnboardEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
	}
	if r.CTC.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ctc", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the display-ready projection: bank fields decrypted,
// dates formatted.
type EmployeeResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             *string         `json:"phone,omitempty"`
	Department        *string         `json:"department,omitempty"`
	Designation       *string         `json:"designation,omitempty"`
	JoiningDate       string          `json:"joining_date"`
	Status            string          `json:"status"`
	CTC               decimal.Decimal `json:"ctc"`
	PaymentMethod     *string         `json:"payment_method,omitempty"`
	AccountHolderName *string         `json:"account_holder_name,omitempty"`
	BankName          *string         `json:"bank_name,omitempty"`
	AccountNumber     *string         `json:"account_number,omitempty"`
	IFSCCode          *string         `json:"ifsc_code,omitempty"`
}

type ListFilter struct {
	Department *string
	Status     *EmployeeStatus
	Search     *string
	Page       int
	Limit      int
}
