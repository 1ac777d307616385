package payslip

import (
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
)

type GenerateSlipRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SlipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Month       string `json:"month"`
	FileURL     string `json:"file_url"`
	IsPublished bool   `json:"is_published"`
	GeneratedAt string `json:"generated_at"`
}
