package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/crypto"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type fakePayrollRepo struct {
	rows map[string]payroll.Payroll // employeeID|month
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{rows: make(map[string]payroll.Payroll)}
}

func payKey(employeeID, month string) string { return employeeID + "|" + month }

func (f *fakePayrollRepo) Create(_ context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	k := payKey(p.EmployeeID, p.Month)
	if _, ok := f.rows[k]; ok {
		return payroll.Payroll{}, payroll.ErrAlreadyPaid
	}
	p.ID = fmt.Sprintf("pay-%d", len(f.rows)+1)
	f.rows[k] = p
	return p, nil
}

func (f *fakePayrollRepo) GetByEmployeeAndMonth(_ context.Context, employeeID, month string) (payroll.Payroll, error) {
	p, ok := f.rows[payKey(employeeID, month)]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListByMonth(_ context.Context, month string) ([]payroll.Payroll, error) {
	var result []payroll.Payroll
	for _, p := range f.rows {
		if p.Month == month {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string) ([]payroll.Payroll, error) {
	var result []payroll.Payroll
	for _, p := range f.rows {
		if p.EmployeeID == employeeID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) CountPaidByMonth(_ context.Context, month string) (int64, error) {
	var count int64
	for _, p := range f.rows {
		if p.Month == month {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		result = append(result, emp)
	}
	return result, int64(len(result)), nil
}

func (f *fakeEmployeeRepo) ListByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, id := range ids {
		if emp, ok := f.employees[id]; ok {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) CountActive(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, status employee.EmployeeStatus) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return nil
}

type fakeAttendanceRepo struct {
	rows map[string][]attendance.Attendance // by employeeID
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.rows[att.EmployeeID] = append(f.rows[att.EmployeeID], att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, _ string, _ time.Time, _ attendance.Status) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, att := range f.rows[employeeID] {
		if !att.Date.Before(from) && !att.Date.After(to) {
			result = append(result, att)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	leaves  map[string][]leave.LeaveApplication
	failFor string
}

func (f *fakeLeaveRepo) Create(_ context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	f.leaves[app.EmployeeID] = append(f.leaves[app.EmployeeID], app)
	return app, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.LeaveApplication, error) {
	return leave.LeaveApplication{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.LeaveStatus, _ string) (leave.LeaveApplication, error) {
	return leave.LeaveApplication{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	return f.leaves[employeeID], nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, _ leave.LeaveStatus) ([]leave.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveApplication, error) {
	if f.failFor == employeeID {
		return nil, errors.New("leave store unavailable")
	}
	var result []leave.LeaveApplication
	for _, app := range f.leaves[employeeID] {
		if app.Status == leave.StatusApproved && !app.FromDate.After(to) && !app.ToDate.Before(from) {
			result = append(result, app)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) HasOverlapping(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}

type fakeStructureRepo struct {
	structures map[string]salary.Structure
}

func (f *fakeStructureRepo) Create(_ context.Context, s salary.Structure) (salary.Structure, error) {
	f.structures[s.EmployeeID] = s
	return s, nil
}

func (f *fakeStructureRepo) LatestByEmployee(_ context.Context, employeeID string) (salary.Structure, error) {
	s, ok := f.structures[employeeID]
	if !ok {
		return salary.Structure{}, salary.ErrStructureNotFound
	}
	return s, nil
}

func (f *fakeStructureRepo) ListByEmployee(_ context.Context, employeeID string) ([]salary.Structure, error) {
	if s, ok := f.structures[employeeID]; ok {
		return []salary.Structure{s}, nil
	}
	return nil, nil
}

type fakeCalendar struct {
	holidays dates.Set
}

func (f *fakeCalendar) HolidayDates(_ context.Context) (dates.Set, error) {
	return f.holidays, nil
}

func (f *fakeCalendar) Invalidate() {}

type fixture struct {
	payrolls    *fakePayrollRepo
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	leaves      *fakeLeaveRepo
	structures  *fakeStructureRepo
	calendar    *fakeCalendar
	svc         payroll.PayrollService
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	codec, err := crypto.NewCodec(testKeyHex)
	require.NoError(t, err)

	f := &fixture{
		payrolls:    newFakePayrollRepo(),
		employees:   &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		attendances: &fakeAttendanceRepo{rows: make(map[string][]attendance.Attendance)},
		leaves:      &fakeLeaveRepo{leaves: make(map[string][]leave.LeaveApplication)},
		structures:  &fakeStructureRepo{structures: make(map[string]salary.Structure)},
		calendar:    &fakeCalendar{holidays: dates.NewSet()},
	}

	passTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}

	f.svc = NewServiceWithClock(
		f.payrolls, f.employees, f.attendances, f.leaves, f.structures,
		f.calendar, codec, passTx,
		func() time.Time { return now },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

// addEmployee seeds an employee with a structure and full June 2024 attendance.
func (f *fixture) addEmployee(id string, earnings, deductions int64, presentDays int) {
	f.employees.employees[id] = employee.Employee{
		ID:     id,
		Name:   "Employee " + id,
		Status: employee.StatusActive,
	}
	f.structures.structures[id] = salary.Structure{
		EmployeeID: id,
		Earnings:   []salary.Component{{Name: "Basic", Amount: decimal.NewFromInt(earnings)}},
		Deductions: []salary.Component{{Name: "PF", Amount: decimal.NewFromInt(deductions)}},
	}
	for d := 1; d <= presentDays; d++ {
		f.attendances.rows[id] = append(f.attendances.rows[id], attendance.Attendance{
			EmployeeID: id,
			Date:       time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusOnTime,
		})
	}
}

func TestPaysCommitsAndIsIdempotent(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)

	req := payroll.PaysRequest{EmployeeIDs: []string{"emp-1"}, Month: "2024-06"}

	results, err := f.svc.Pays(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 1)

	run := results[0]
	assert.Equal(t, "emp-1", run.EmployeeID)
	assert.Equal(t, 30, run.PaidDays)
	assert.True(t, run.GrossSalary.Equal(decimal.NewFromInt(30000)), "gross = %s", run.GrossSalary)
	assert.True(t, run.NetSalary.Equal(decimal.NewFromInt(27000)), "net = %s", run.NetSalary)
	assert.Equal(t, "bank-transfer", run.PaymentMode)
	assert.True(t, strings.HasPrefix(run.TransactionID, "TXN-"), "transaction id = %s", run.TransactionID)

	// Second run over the same month produces no new rows.
	results, err = f.svc.Pays(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Len(t, f.payrolls.rows, 1)
}

func TestPaysRejectsFutureMonth(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)

	_, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-08",
	})
	assert.ErrorIs(t, err, payroll.ErrFutureMonth)
}

func TestPaysCurrentMonthAllowed(t *testing.T) {
	f := newFixture(t, time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestPaysIsolatesPerEmployeeFailures(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)
	f.addEmployee("emp-2", 20000, 2000, 30)
	f.leaves.failFor = "emp-2"

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1", "emp-2"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "emp-1", results[0].EmployeeID)
	assert.Len(t, f.payrolls.rows, 1)
}

func TestPaysSkipsUnknownEmployees(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1", "emp-missing"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "emp-1", results[0].EmployeeID)

	// No row may be committed for an id that matches no employee.
	assert.Len(t, f.payrolls.rows, 1)
	_, ok := f.payrolls.rows[payKey("emp-missing", "2024-06")]
	assert.False(t, ok)
}

func TestPaysWithPaidLeave(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 20)
	f.leaves.leaves["emp-1"] = []leave.LeaveApplication{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		Type:       leave.TypePaid,
		FromDate:   time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
	}}

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// 20 present + 5 paid leave of 30 working days.
	assert.Equal(t, 25, results[0].PaidDays)
	assert.True(t, results[0].GrossSalary.Equal(decimal.NewFromInt(25000)), "gross = %s", results[0].GrossSalary)
	assert.True(t, results[0].NetSalary.Equal(decimal.NewFromInt(22500)), "net = %s", results[0].NetSalary)
}

func TestPaysZeroWorkingDays(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 0)
	for d := 1; d <= 30; d++ {
		f.calendar.holidays.Add(time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC))
	}

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].PaidDays)
	assert.True(t, results[0].GrossSalary.IsZero())
	assert.True(t, results[0].NetSalary.IsZero())
}

func TestPaysMissingStructureYieldsZeroPayout(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)
	delete(f.structures.structures, "emp-1")

	results, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 30, results[0].PaidDays)
	assert.True(t, results[0].NetSalary.IsZero())
}

func TestMonthlySummaryStatusAndFigures(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)
	f.addEmployee("emp-2", 20000, 2000, 15)

	// Commit emp-1 only.
	_, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)

	summaries, total, err := f.svc.MonthlySummary(context.Background(), payroll.SummaryFilter{Month: "2024-06"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	byID := make(map[string]payroll.EmployeeSummary)
	for _, s := range summaries {
		byID[s.EmployeeID] = s
	}

	paid := byID["emp-1"]
	assert.Equal(t, string(payroll.StatusPaid), paid.Status)
	assert.Equal(t, 30, paid.PayableDays)
	assert.True(t, paid.NetSalary.Equal(decimal.NewFromInt(27000)), "net = %s", paid.NetSalary)

	unpaid := byID["emp-2"]
	assert.Equal(t, string(payroll.StatusUnpaid), unpaid.Status)
	assert.Equal(t, 15, unpaid.PayableDays)
	assert.True(t, unpaid.NetSalary.Equal(decimal.NewFromInt(9000)), "net = %s", unpaid.NetSalary)

	// Status filter narrows the listing.
	// With a status filter the total describes the filtered page.
	status := string(payroll.StatusPaid)
	filtered, filteredTotal, err := f.svc.MonthlySummary(context.Background(), payroll.SummaryFilter{
		Month:  "2024-06",
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "emp-1", filtered[0].EmployeeID)
	assert.EqualValues(t, 1, filteredTotal)
}

func TestStats(t *testing.T) {
	f := newFixture(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	f.addEmployee("emp-1", 30000, 3000, 30)
	f.addEmployee("emp-2", 20000, 2000, 30)

	_, err := f.svc.Pays(context.Background(), payroll.PaysRequest{
		EmployeeIDs: []string{"emp-1"},
		Month:       "2024-06",
	})
	require.NoError(t, err)

	stats, err := f.svc.Stats(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalEmployees)
	assert.EqualValues(t, 1, stats.ProcessedPays)
	assert.EqualValues(t, 1, stats.PendingPays)

	current, err := f.svc.CurrentStats(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.True(t, current.TotalGrossSalary.Equal(decimal.NewFromInt(30000)))
	assert.True(t, current.TotalNetSalary.Equal(decimal.NewFromInt(27000)))
}
