package payroll

import (
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func attRow(d time.Time, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{EmployeeID: "emp-1", Date: d, Status: status}
}

func structureOf(earnings, deductions int64) salary.Structure {
	return salary.Structure{
		Earnings:   []salary.Component{{Name: "Basic", Amount: decimal.NewFromInt(earnings)}},
		Deductions: []salary.Component{{Name: "PF", Amount: decimal.NewFromInt(deductions)}},
	}
}

func TestPresentDays(t *testing.T) {
	records := []attendance.Attendance{
		attRow(day(2024, 6, 3), attendance.StatusOnTime),
		attRow(day(2024, 6, 4), attendance.StatusLate),
		attRow(day(2024, 6, 5), attendance.StatusOverTime),
		attRow(day(2024, 6, 6), attendance.StatusHalfDay),
		attRow(day(2024, 6, 7), attendance.StatusAbsent),
	}

	assert.Equal(t, 4, PresentDays(records))
	assert.Equal(t, 0, PresentDays(nil))
}

func TestPaidLeaveDays(t *testing.T) {
	monthStart := day(2024, 6, 1)
	monthEnd := day(2024, 6, 30)

	t.Run("approved paid leave inside month", func(t *testing.T) {
		leaves := []leave.LeaveApplication{{
			Status:   leave.StatusApproved,
			Type:     leave.TypePaid,
			FromDate: day(2024, 6, 10),
			ToDate:   day(2024, 6, 14),
		}}
		assert.Equal(t, 5, PaidLeaveDays(leaves, monthStart, monthEnd, dates.NewSet()))
	})

	t.Run("unpaid leave contributes nothing", func(t *testing.T) {
		leaves := []leave.LeaveApplication{{
			Status:   leave.StatusApproved,
			Type:     leave.TypeUnpaid,
			FromDate: day(2024, 6, 10),
			ToDate:   day(2024, 6, 14),
		}}
		assert.Equal(t, 0, PaidLeaveDays(leaves, monthStart, monthEnd, dates.NewSet()))
	})

	t.Run("pending leave contributes nothing", func(t *testing.T) {
		leaves := []leave.LeaveApplication{{
			Status:   leave.StatusPending,
			Type:     leave.TypePaid,
			FromDate: day(2024, 6, 10),
			ToDate:   day(2024, 6, 14),
		}}
		assert.Equal(t, 0, PaidLeaveDays(leaves, monthStart, monthEnd, dates.NewSet()))
	})

	t.Run("range clipped to the month", func(t *testing.T) {
		leaves := []leave.LeaveApplication{{
			Status:   leave.StatusApproved,
			Type:     leave.TypePaid,
			FromDate: day(2024, 5, 28),
			ToDate:   day(2024, 6, 3),
		}}
		assert.Equal(t, 3, PaidLeaveDays(leaves, monthStart, monthEnd, dates.NewSet()))
	})

	t.Run("holidays inside the leave are excluded", func(t *testing.T) {
		leaves := []leave.LeaveApplication{{
			Status:   leave.StatusApproved,
			Type:     leave.TypePaid,
			FromDate: day(2024, 6, 10),
			ToDate:   day(2024, 6, 14),
		}}
		holidays := dates.NewSet(day(2024, 6, 12))
		assert.Equal(t, 4, PaidLeaveDays(leaves, monthStart, monthEnd, holidays))
	})
}

// A day both present and on approved paid leave counts twice. The original
// back office never de-duplicated the two ledgers and downstream payouts
// depend on the totals staying stable.
func TestPresentAndPaidLeaveSameDayAreAdditive(t *testing.T) {
	monthStart := day(2024, 6, 1)
	monthEnd := day(2024, 6, 30)

	records := []attendance.Attendance{attRow(day(2024, 6, 10), attendance.StatusOnTime)}
	leaves := []leave.LeaveApplication{{
		Status:   leave.StatusApproved,
		Type:     leave.TypePaid,
		FromDate: day(2024, 6, 10),
		ToDate:   day(2024, 6, 10),
	}}

	payable := PresentDays(records) + PaidLeaveDays(leaves, monthStart, monthEnd, dates.NewSet())
	assert.Equal(t, 2, payable)
}

func TestProrate(t *testing.T) {
	t.Run("full month pays full structure", func(t *testing.T) {
		gross, deductions, net, err := Prorate(structureOf(30000, 3000), 30, 30)
		require.NoError(t, err)
		assert.True(t, gross.Equal(decimal.NewFromInt(30000)), "gross = %s", gross)
		assert.True(t, deductions.Equal(decimal.NewFromInt(3000)), "deductions = %s", deductions)
		assert.True(t, net.Equal(decimal.NewFromInt(27000)), "net = %s", net)
	})

	t.Run("partial month is prorated and rounded", func(t *testing.T) {
		// 25 of 30 days on 30000/3000: gross 25000, deductions 2500.
		gross, deductions, net, err := Prorate(structureOf(30000, 3000), 25, 30)
		require.NoError(t, err)
		assert.True(t, gross.Equal(decimal.NewFromInt(25000)), "gross = %s", gross)
		assert.True(t, deductions.Equal(decimal.NewFromInt(2500)), "deductions = %s", deductions)
		assert.True(t, net.Equal(decimal.NewFromInt(22500)), "net = %s", net)
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 100/8 = 12.5 per day; one payable day rounds to 13.
		structure := salary.Structure{
			Earnings: []salary.Component{{Name: "Basic", Amount: decimal.NewFromInt(100)}},
		}
		gross, _, _, err := Prorate(structure, 1, 8)
		require.NoError(t, err)
		assert.True(t, gross.Equal(decimal.NewFromInt(13)), "gross = %s", gross)
	})

	t.Run("zero working days yields zeros not infinity", func(t *testing.T) {
		gross, deductions, net, err := Prorate(structureOf(30000, 3000), 0, 0)
		assert.ErrorIs(t, err, payroll.ErrZeroWorkingDays)
		assert.True(t, gross.IsZero())
		assert.True(t, deductions.IsZero())
		assert.True(t, net.IsZero())
	})

	t.Run("empty structure yields zeros", func(t *testing.T) {
		gross, deductions, net, err := Prorate(salary.Structure{}, 20, 30)
		require.NoError(t, err)
		assert.True(t, gross.IsZero())
		assert.True(t, deductions.IsZero())
		assert.True(t, net.IsZero())
	})
}
