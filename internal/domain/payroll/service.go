package payroll

import "context"

type PayrollService interface {
	// MonthlySummary lists computed payable figures for every employee in
	// the month, with paid/unpaid status derived from committed pay-runs.
	MonthlySummary(ctx context.Context, filter SummaryFilter) ([]EmployeeSummary, int64, error)
	Detail(ctx context.Context, employeeID string) (DetailResponse, error)
	// Pays commits pay-run rows for the given employees and month. Employees
	// already paid for the month are skipped; a re-run over a fully paid
	// month returns an empty slice.
	Pays(ctx context.Context, req PaysRequest) ([]PayRunResponse, error)
	PaidRuns(ctx context.Context, month string) ([]PayRunResponse, error)
	Stats(ctx context.Context, month string) (StatsResponse, error)
	CurrentStats(ctx context.Context, month string) (CurrentStatsResponse, error)
}
