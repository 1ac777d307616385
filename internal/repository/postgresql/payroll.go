package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPayroll(row pgx.Row, withName bool) (payroll.Payroll, error) {
	var p payroll.Payroll
	var earningsJSON, deductionsJSON []byte

	dest := []any{
		&p.ID, &p.EmployeeID, &p.Month, &p.PaidDays, &earningsJSON,
		&deductionsJSON, &p.GrossSalary, &p.TotalDeductions, &p.NetSalary,
		&p.Status, &p.PaidAt, &p.PaymentMode, &p.TransactionID, &p.CreatedAt,
	}
	if withName {
		dest = append(dest, &p.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.Payroll{}, err
	}

	if err := json.Unmarshal(earningsJSON, &p.Earnings); err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to decode earnings: %w", err)
	}
	if err := json.Unmarshal(deductionsJSON, &p.Deductions); err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to decode deductions: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	earningsJSON, err := json.Marshal(p.Earnings)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode earnings: %w", err)
	}
	deductionsJSON, err := json.Marshal(p.Deductions)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, paid_days, earnings, deductions,
			gross_salary, total_deductions, net_salary, status, paid_at,
			payment_mode, transaction_id
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, employee_id, month, paid_days, earnings, deductions,
		          gross_salary, total_deductions, net_salary, status, paid_at,
		          payment_mode, transaction_id, created_at
	`

	created, err := scanPayroll(q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.PaidDays, earningsJSON, deductionsJSON,
		p.GrossSalary, p.TotalDeductions, p.NetSalary, p.Status, p.PaidAt,
		p.PaymentMode, p.TransactionID,
	), false)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payroll{}, payroll.ErrAlreadyPaid
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, paid_days, earnings, deductions,
		       gross_salary, total_deductions, net_salary, status, paid_at,
		       payment_mode, transaction_id, created_at
		FROM payrolls
		WHERE employee_id = $1 AND month = $2
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByMonth(ctx context.Context, month string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.paid_days, p.earnings,
		       p.deductions, p.gross_salary, p.total_deductions, p.net_salary,
		       p.status, p.paid_at, p.payment_mode, p.transaction_id,
		       p.created_at, e.name
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by month: %w", err)
	}
	defer rows.Close()

	var result []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return result, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, paid_days, earnings, deductions,
		       gross_salary, total_deductions, net_salary, status, paid_at,
		       payment_mode, transaction_id, created_at
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by employee: %w", err)
	}
	defer rows.Close()

	var result []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return result, nil
}

func (r *payrollRepository) CountPaidByMonth(ctx context.Context, month string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payrolls WHERE month = $1`, month).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	return count, nil
}
