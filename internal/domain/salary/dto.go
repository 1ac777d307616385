package salary

import (
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReviseStructureRequest struct {
	EmployeeID    string
	Earnings      []Component      `json:"earnings"`
	Deductions    []Component      `json:"deductions"`
	CTC           decimal.Decimal  `json:"ctc"`
	Increment     *decimal.Decimal `json:"increment,omitempty"`
	Remark        *string          `json:"remark,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
}

func (r *ReviseStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Earnings) == 0 {
		errs = append(errs, validator.ValidationError{Field: "earnings", Message: "at least one earning component is required"})
	}
	for _, c := range r.Earnings {
		if validator.IsEmpty(c.Name) {
			errs = append(errs, validator.ValidationError{Field: "earnings", Message: "component name is required"})
			break
		}
	}
	for _, c := range append(r.Earnings, r.Deductions...) {
		if c.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "component amounts must be non-negative"})
			break
		}
	}
	if r.CTC.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "ctc", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StructureResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Earnings      []Component      `json:"earnings"`
	Deductions    []Component      `json:"deductions"`
	CTC           decimal.Decimal  `json:"ctc"`
	Increment     *decimal.Decimal `json:"increment,omitempty"`
	Remark        *string          `json:"remark,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
	GrossSalary   decimal.Decimal  `json:"gross_salary"`
	Deduction     decimal.Decimal  `json:"deduction"`
	NetSalary     decimal.Decimal  `json:"net_salary"`
}
