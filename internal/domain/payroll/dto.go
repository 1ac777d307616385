package payroll

import (
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PaysRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Month       string   `json:"month"`
}

func (r *PaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryFilter struct {
	Month      string
	Department *string
	// Status narrows to "paid" or "unpaid" rows. It is applied after the page
	// of employees is computed, so with a status filter the returned total is
	// the filtered count of the current page rather than a global count.
	Status *string
	Search *string
	Page   int
	Limit  int
}

// EmployeeSummary is one row of the month-scoped payroll listing.
type EmployeeSummary struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Department   *string            `json:"department,omitempty"`
	Designation  *string            `json:"designation,omitempty"`
	PayableDays  int                `json:"payable_days"`
	GrossSalary  decimal.Decimal    `json:"gross_salary"`
	Deductions   decimal.Decimal    `json:"deductions"`
	NetSalary    decimal.Decimal    `json:"net_salary"`
	Structure    *StructureSnapshot `json:"structure,omitempty"`
	Status       string             `json:"status"`
}

type StructureSnapshot struct {
	Earnings   []salary.Component `json:"earnings"`
	Deductions []salary.Component `json:"deductions"`
}

// DetailResponse is the per-employee payroll view: identity, bank details
// (decrypted), latest structure totals and pay history.
type DetailResponse struct {
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	Status            string          `json:"status"`
	Department        *string         `json:"department,omitempty"`
	Designation       *string         `json:"designation,omitempty"`
	JoiningDate       string          `json:"joining_date"`
	CTC               decimal.Decimal `json:"ctc"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	Deductions        decimal.Decimal `json:"deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	PaymentMethod     *string         `json:"payment_method,omitempty"`
	AccountHolderName *string         `json:"account_holder_name,omitempty"`
	BankName          *string         `json:"bank_name,omitempty"`
	AccountNumber     *string         `json:"account_number,omitempty"`
	IFSCCode          *string         `json:"ifsc_code,omitempty"`
	History           []HistoryEntry  `json:"payroll_history"`
}

type HistoryEntry struct {
	Month         string          `json:"month"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	PaymentMode   string          `json:"payment_mode"`
	TransactionID string          `json:"transaction_id"`
	PaidAt        string          `json:"paid_at"`
	Status        string          `json:"status"`
}

// PayRunResponse is one committed pay-run row.
type PayRunResponse struct {
	EmployeeID    string             `json:"employee_id"`
	EmployeeName  string             `json:"employee_name"`
	Month         string             `json:"month"`
	PaidDays      int                `json:"paid_days"`
	GrossSalary   decimal.Decimal    `json:"gross_salary"`
	Deductions    decimal.Decimal    `json:"deductions"`
	NetSalary     decimal.Decimal    `json:"net_salary"`
	Structure     *StructureSnapshot `json:"structure,omitempty"`
	PaymentMode   string             `json:"payment_mode"`
	TransactionID string             `json:"transaction_id"`
	PaidAt        string             `json:"paid_at"`
}

type StatsResponse struct {
	Month          string `json:"month"`
	TotalEmployees int64  `json:"total_employees"`
	ProcessedPays  int64  `json:"processed_pays"`
	PendingPays    int64  `json:"pending_pays"`
}

type CurrentStatsResponse struct {
	Month            string          `json:"month"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}
