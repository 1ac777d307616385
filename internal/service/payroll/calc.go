package payroll

import (
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// PresentDays counts attendance rows whose status marks the day present.
// Absent rows contribute nothing; a half-day still counts as one full day.
func PresentDays(records []attendance.Attendance) int {
	days := 0
	for _, r := range records {
		if r.Status.CountsAsPresent() {
			days++
		}
	}
	return days
}

// PaidLeaveDays sums, over the approved leaves overlapping the month, the
// working days inside the intersection of the leave range and [monthStart,
// monthEnd]. Unpaid leaves contribute zero. Days both present and on paid
// leave are counted twice; that additive behavior is intentional and pinned
// by tests.
func PaidLeaveDays(leaves []leave.LeaveApplication, monthStart, monthEnd time.Time, holidays dates.Set) int {
	days := 0
	for _, l := range leaves {
		if l.Status != leave.StatusApproved || l.Type != leave.TypePaid {
			continue
		}
		start := dates.MaxDate(l.FromDate, monthStart)
		end := dates.MinDate(l.ToDate, monthEnd)
		days += dates.CalculateDaysBetween(start, end, holidays)
	}
	return days
}

// Prorate derives gross, deduction and net salary for payableDays out of
// workingDays, from the structure's component totals. Each figure is computed
// from its own per-day rate and rounded half away from zero, matching the
// committed pay-run snapshots. A zero workingDays denominator yields all
// zeros and ErrZeroWorkingDays so the caller can log it; it never produces
// NaN or infinity.
func Prorate(structure salary.Structure, payableDays, workingDays int) (gross, deductions, net decimal.Decimal, err error) {
	if workingDays == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero, payroll.ErrZeroWorkingDays
	}

	earningTotal := structure.EarningTotal()
	deductionTotal := structure.DeductionTotal()

	working := decimal.NewFromInt(int64(workingDays))
	payable := decimal.NewFromInt(int64(payableDays))

	gross = earningTotal.Div(working).Mul(payable).Round(0)
	deductions = deductionTotal.Div(working).Mul(payable).Round(0)
	net = earningTotal.Sub(deductionTotal).Div(working).Mul(payable).Round(0)

	return gross, deductions, net, nil
}
