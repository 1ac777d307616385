package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component is one named earning or deduction line item. Stored as JSONB in
// the structure row, and snapshotted verbatim into pay-run records.
type Component struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Structure is one versioned salary definition for an employee. Revisions are
// append-only: the authoritative structure for a pay cycle is the latest by
// (effective_from desc, created_at desc).
type Structure struct {
	ID            string
	EmployeeID    string
	Earnings      []Component
	Deductions    []Component
	CTC           decimal.Decimal
	Increment     *decimal.Decimal
	Remark        *string
	EffectiveFrom time.Time
	CreatedAt     time.Time
}

// EarningTotal sums the earning components.
func (s Structure) EarningTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.Earnings {
		total = total.Add(c.Amount)
	}
	return total
}

// DeductionTotal sums the deduction components.
func (s Structure) DeductionTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.Deductions {
		total = total.Add(c.Amount)
	}
	return total
}
