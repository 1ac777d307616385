package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/holiday"
	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/crypto"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// summaryConcurrency caps the per-employee computations running in parallel
// during a month summary.
const summaryConcurrency = 8

const paymentModeBankTransfer = "bank-transfer"

// TxRunner executes fn atomically, mirroring the onboarding service.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type service struct {
	payrolls    payroll.PayrollRepository
	employees   employee.EmployeeRepository
	attendances attendance.AttendanceRepository
	leaves      leave.LeaveRepository
	structures  salary.StructureRepository
	calendar    holiday.Calendar
	codec       *crypto.Codec
	inTx        TxRunner
	now         func() time.Time
	logger      *slog.Logger
}

func NewService(
	payrolls payroll.PayrollRepository,
	employees employee.EmployeeRepository,
	attendances attendance.AttendanceRepository,
	leaves leave.LeaveRepository,
	structures salary.StructureRepository,
	calendar holiday.Calendar,
	codec *crypto.Codec,
	inTx TxRunner,
	logger *slog.Logger,
) payroll.PayrollService {
	return &service{
		payrolls:    payrolls,
		employees:   employees,
		attendances: attendances,
		leaves:      leaves,
		structures:  structures,
		calendar:    calendar,
		codec:       codec,
		inTx:        inTx,
		now:         time.Now,
		logger:      logger,
	}
}

// NewServiceWithClock is used by tests to pin the current time.
func NewServiceWithClock(
	payrolls payroll.PayrollRepository,
	employees employee.EmployeeRepository,
	attendances attendance.AttendanceRepository,
	leaves leave.LeaveRepository,
	structures salary.StructureRepository,
	calendar holiday.Calendar,
	codec *crypto.Codec,
	inTx TxRunner,
	now func() time.Time,
	logger *slog.Logger,
) payroll.PayrollService {
	svc := NewService(payrolls, employees, attendances, leaves, structures, calendar, codec, inTx, logger).(*service)
	svc.now = now
	return svc
}

// computeFigures derives the payable figures for one employee and month. A
// missing salary structure yields zero totals rather than an error; zero
// working days yields all zeros with a logged warning.
func (s *service) computeFigures(ctx context.Context, employeeID, month string, holidays dates.Set) (payroll.Figures, error) {
	monthStart, monthEnd, err := dates.MonthBounds(month)
	if err != nil {
		return payroll.Figures{}, fmt.Errorf("invalid month %q: %w", month, err)
	}

	records, err := s.attendances.ListByEmployeeAndRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return payroll.Figures{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	leaves, err := s.leaves.ListApprovedOverlapping(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return payroll.Figures{}, fmt.Errorf("failed to load leaves: %w", err)
	}

	structure, err := s.structures.LatestByEmployee(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrStructureNotFound) {
			return payroll.Figures{}, fmt.Errorf("failed to load salary structure: %w", err)
		}
		structure = salary.Structure{}
	}

	presentDays := PresentDays(records)
	paidLeaveDays := PaidLeaveDays(leaves, monthStart, monthEnd, holidays)
	payableDays := presentDays + paidLeaveDays
	workingDays := dates.CalculateDaysBetween(monthStart, monthEnd, holidays)

	gross, deductions, net, err := Prorate(structure, payableDays, workingDays)
	if err != nil {
		if errors.Is(err, payroll.ErrZeroWorkingDays) {
			s.logger.WarnContext(ctx, "month has no working days, salaries zeroed",
				"employee_id", employeeID, "month", month)
		} else {
			return payroll.Figures{}, err
		}
	}

	return payroll.Figures{
		EmployeeID:      employeeID,
		PayableDays:     payableDays,
		PresentDays:     presentDays,
		PaidLeaveDays:   paidLeaveDays,
		GrossSalary:     gross,
		TotalDeductions: deductions,
		NetSalary:       net,
		Earnings:        structure.Earnings,
		Deductions:      structure.Deductions,
	}, nil
}

func (s *service) MonthlySummary(ctx context.Context, filter payroll.SummaryFilter) ([]payroll.EmployeeSummary, int64, error) {
	if _, ok := validator.IsValidMonth(filter.Month); !ok {
		return nil, 0, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	active := employee.StatusActive
	employees, total, err := s.employees.List(ctx, employee.ListFilter{
		Department: filter.Department,
		Status:     &active,
		Search:     filter.Search,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	holidays, err := s.calendar.HolidayDates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	paid, err := s.payrolls.ListByMonth(ctx, filter.Month)
	if err != nil {
		return nil, 0, err
	}
	paidByEmployee := make(map[string]payroll.Payroll, len(paid))
	for _, p := range paid {
		paidByEmployee[p.EmployeeID] = p
	}

	// Employees are independent of each other; compute them in parallel over
	// a consistent snapshot.
	summaries := make([]payroll.EmployeeSummary, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			summary, err := s.summarize(gctx, emp, filter.Month, holidays, paidByEmployee)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	// The status filter applies to the already-paged employee set: figures are
	// only known after computation, so the page is computed first and then
	// narrowed. Total then counts the filtered rows of this page, not all
	// employees; see SummaryFilter.Status.
	if filter.Status != nil {
		filtered := summaries[:0]
		for _, summary := range summaries {
			if summary.Status == *filter.Status {
				filtered = append(filtered, summary)
			}
		}
		summaries = filtered
		total = int64(len(filtered))
	}

	return summaries, total, nil
}

// summarize builds one listing row. A committed pay-run is authoritative for
// its month; otherwise figures are computed on the fly.
func (s *service) summarize(
	ctx context.Context,
	emp employee.Employee,
	month string,
	holidays dates.Set,
	paidByEmployee map[string]payroll.Payroll,
) (payroll.EmployeeSummary, error) {
	summary := payroll.EmployeeSummary{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		Designation:  emp.Designation,
		Status:       string(payroll.StatusUnpaid),
	}

	if p, ok := paidByEmployee[emp.ID]; ok {
		summary.PayableDays = p.PaidDays
		summary.GrossSalary = p.GrossSalary
		summary.Deductions = p.TotalDeductions
		summary.NetSalary = p.NetSalary
		summary.Structure = &payroll.StructureSnapshot{Earnings: p.Earnings, Deductions: p.Deductions}
		summary.Status = string(payroll.StatusPaid)
		return summary, nil
	}

	figures, err := s.computeFigures(ctx, emp.ID, month, holidays)
	if err != nil {
		return payroll.EmployeeSummary{}, err
	}

	summary.PayableDays = figures.PayableDays
	summary.GrossSalary = figures.GrossSalary
	summary.Deductions = figures.TotalDeductions
	summary.NetSalary = figures.NetSalary
	if len(figures.Earnings) > 0 || len(figures.Deductions) > 0 {
		summary.Structure = &payroll.StructureSnapshot{Earnings: figures.Earnings, Deductions: figures.Deductions}
	}
	return summary, nil
}

func (s *service) Detail(ctx context.Context, employeeID string) (payroll.DetailResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.DetailResponse{}, err
	}

	accountNumber, err := s.decryptOptional(emp.AccountNumber)
	if err != nil {
		return payroll.DetailResponse{}, fmt.Errorf("failed to decrypt account number: %w", err)
	}
	ifscCode, err := s.decryptOptional(emp.IFSCCode)
	if err != nil {
		return payroll.DetailResponse{}, fmt.Errorf("failed to decrypt ifsc code: %w", err)
	}

	structure, err := s.structures.LatestByEmployee(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, salary.ErrStructureNotFound) {
			return payroll.DetailResponse{}, err
		}
		structure = salary.Structure{}
	}

	history, err := s.payrolls.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.DetailResponse{}, err
	}

	entries := make([]payroll.HistoryEntry, 0, len(history))
	for _, p := range history {
		entries = append(entries, payroll.HistoryEntry{
			Month:         p.Month,
			NetSalary:     p.NetSalary,
			PaymentMode:   p.PaymentMode,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt.Format(time.RFC3339),
			Status:        string(p.Status),
		})
	}

	gross := structure.EarningTotal()
	deductions := structure.DeductionTotal()

	return payroll.DetailResponse{
		EmployeeID:        emp.ID,
		Name:              emp.Name,
		Status:            string(emp.Status),
		Department:        emp.Department,
		Designation:       emp.Designation,
		JoiningDate:       emp.JoiningDate.Format("2006-01-02"),
		CTC:               emp.CTC,
		GrossSalary:       gross,
		Deductions:        deductions,
		NetSalary:         gross.Sub(deductions),
		PaymentMethod:     emp.PaymentMethod,
		AccountHolderName: emp.AccountHolderName,
		BankName:          emp.BankName,
		AccountNumber:     accountNumber,
		IFSCCode:          ifscCode,
		History:           entries,
	}, nil
}

func (s *service) Pays(ctx context.Context, req payroll.PaysRequest) ([]payroll.PayRunResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	monthStart, _ := time.Parse("2006-01", req.Month)
	currentMonth := time.Date(s.now().Year(), s.now().Month(), 1, 0, 0, 0, 0, time.UTC)
	if monthStart.After(currentMonth) {
		return nil, payroll.ErrFutureMonth
	}

	holidays, err := s.calendar.HolidayDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	employees, err := s.employees.ListByIDs(ctx, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(employees))
	for _, emp := range employees {
		nameByID[emp.ID] = emp.Name
	}

	// One transaction per employee: a failed employee rolls back only its own
	// writes and never blocks the rest of the batch.
	var results []payroll.PayRunResponse
	for _, employeeID := range req.EmployeeIDs {
		if _, ok := nameByID[employeeID]; !ok {
			s.logger.WarnContext(ctx, "pay-run skipped unknown employee",
				"employee_id", employeeID, "month", req.Month)
			continue
		}

		created, err := s.payOne(ctx, employeeID, req.Month, holidays)
		if err != nil {
			if errors.Is(err, payroll.ErrAlreadyPaid) {
				continue
			}
			s.logger.ErrorContext(ctx, "pay-run failed for employee",
				"employee_id", employeeID, "month", req.Month, "error", err)
			continue
		}

		results = append(results, payroll.PayRunResponse{
			EmployeeID:    created.EmployeeID,
			EmployeeName:  nameByID[created.EmployeeID],
			Month:         created.Month,
			PaidDays:      created.PaidDays,
			GrossSalary:   created.GrossSalary,
			Deductions:    created.TotalDeductions,
			NetSalary:     created.NetSalary,
			Structure:     &payroll.StructureSnapshot{Earnings: created.Earnings, Deductions: created.Deductions},
			PaymentMode:   created.PaymentMode,
			TransactionID: created.TransactionID,
			PaidAt:        created.PaidAt.Format(time.RFC3339),
		})
	}

	s.logger.InfoContext(ctx, "pay-run committed",
		"month", req.Month, "requested", len(req.EmployeeIDs), "paid", len(results))

	return results, nil
}

// payOne commits one employee's pay-run. Existence is re-checked inside the
// transaction and the unique index on (employee_id, month) backs it up, so a
// concurrent commit loses cleanly with ErrAlreadyPaid.
func (s *service) payOne(ctx context.Context, employeeID, month string, holidays dates.Set) (payroll.Payroll, error) {
	var created payroll.Payroll
	err := s.inTx(ctx, func(ctx context.Context) error {
		_, err := s.payrolls.GetByEmployeeAndMonth(ctx, employeeID, month)
		if err == nil {
			return payroll.ErrAlreadyPaid
		}
		if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return err
		}

		figures, err := s.computeFigures(ctx, employeeID, month, holidays)
		if err != nil {
			return err
		}

		created, err = s.payrolls.Create(ctx, payroll.Payroll{
			EmployeeID:      employeeID,
			Month:           month,
			PaidDays:        figures.PayableDays,
			Earnings:        figures.Earnings,
			Deductions:      figures.Deductions,
			GrossSalary:     figures.GrossSalary,
			TotalDeductions: figures.TotalDeductions,
			NetSalary:       figures.NetSalary,
			Status:          payroll.StatusPaid,
			PaidAt:          s.now().UTC(),
			PaymentMode:     paymentModeBankTransfer,
			TransactionID:   newTransactionID(s.now()),
		})
		return err
	})
	if err != nil {
		return payroll.Payroll{}, err
	}
	return created, nil
}

func (s *service) PaidRuns(ctx context.Context, month string) ([]payroll.PayRunResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	paid, err := s.payrolls.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.PayRunResponse, 0, len(paid))
	for _, p := range paid {
		name := ""
		if p.EmployeeName != nil {
			name = *p.EmployeeName
		}
		results = append(results, payroll.PayRunResponse{
			EmployeeID:    p.EmployeeID,
			EmployeeName:  name,
			Month:         p.Month,
			PaidDays:      p.PaidDays,
			GrossSalary:   p.GrossSalary,
			Deductions:    p.TotalDeductions,
			NetSalary:     p.NetSalary,
			Structure:     &payroll.StructureSnapshot{Earnings: p.Earnings, Deductions: p.Deductions},
			PaymentMode:   p.PaymentMode,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt.Format(time.RFC3339),
		})
	}

	return results, nil
}

func (s *service) Stats(ctx context.Context, month string) (payroll.StatsResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.StatsResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	total, err := s.employees.CountActive(ctx)
	if err != nil {
		return payroll.StatsResponse{}, err
	}

	processed, err := s.payrolls.CountPaidByMonth(ctx, month)
	if err != nil {
		return payroll.StatsResponse{}, err
	}

	pending := total - processed
	if pending < 0 {
		pending = 0
	}

	return payroll.StatsResponse{
		Month:          month,
		TotalEmployees: total,
		ProcessedPays:  processed,
		PendingPays:    pending,
	}, nil
}

func (s *service) CurrentStats(ctx context.Context, month string) (payroll.CurrentStatsResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.CurrentStatsResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}

	paid, err := s.payrolls.ListByMonth(ctx, month)
	if err != nil {
		return payroll.CurrentStatsResponse{}, err
	}

	stats := payroll.CurrentStatsResponse{
		Month:            month,
		TotalGrossSalary: decimal.Zero,
		TotalDeductions:  decimal.Zero,
		TotalNetSalary:   decimal.Zero,
	}
	for _, p := range paid {
		stats.TotalGrossSalary = stats.TotalGrossSalary.Add(p.GrossSalary)
		stats.TotalDeductions = stats.TotalDeductions.Add(p.TotalDeductions)
		stats.TotalNetSalary = stats.TotalNetSalary.Add(p.NetSalary)
	}

	return stats, nil
}

func (s *service) decryptOptional(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	decrypted, err := s.codec.DecryptField(*value)
	if err != nil {
		return nil, err
	}
	return &decrypted, nil
}

func newTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
