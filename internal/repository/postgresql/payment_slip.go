package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyResearchRoom/mrrhr/internal/domain/payslip"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type paymentSlipRepository struct {
	db *database.DB
}

func NewPaymentSlipRepository(db *database.DB) payslip.SlipRepository {
	return &paymentSlipRepository{db: db}
}

func scanSlip(row pgx.Row) (payslip.Slip, error) {
	var s payslip.Slip
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PayrollID, &s.Month, &s.FilePath,
		&s.IsPublished, &s.GeneratedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *paymentSlipRepository) Create(ctx context.Context, s payslip.Slip) (payslip.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_slips (
			id, employee_id, payroll_id, month, file_path, is_published, generated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, payroll_id, month, file_path, is_published,
		          generated_at, created_at, updated_at
	`

	created, err := scanSlip(q.QueryRow(ctx, query,
		s.EmployeeID, s.PayrollID, s.Month, s.FilePath, s.IsPublished, s.GeneratedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payslip.Slip{}, payslip.ErrSlipExists
		}
		return payslip.Slip{}, fmt.Errorf("failed to create payment slip: %w", err)
	}

	return created, nil
}

func (r *paymentSlipRepository) GetByID(ctx context.Context, id string) (payslip.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payroll_id, month, file_path, is_published,
		       generated_at, created_at, updated_at
		FROM payment_slips
		WHERE id = $1
	`

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Slip{}, payslip.ErrSlipNotFound
		}
		return payslip.Slip{}, fmt.Errorf("failed to get payment slip: %w", err)
	}

	return s, nil
}

func (r *paymentSlipRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payslip.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payroll_id, month, file_path, is_published,
		       generated_at, created_at, updated_at
		FROM payment_slips
		WHERE employee_id = $1 AND month = $2
	`

	s, err := scanSlip(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Slip{}, payslip.ErrSlipNotFound
		}
		return payslip.Slip{}, fmt.Errorf("failed to get payment slip: %w", err)
	}

	return s, nil
}

func (r *paymentSlipRepository) ListByEmployee(ctx context.Context, employeeID string, publishedOnly bool) ([]payslip.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, payroll_id, month, file_path, is_published,
		       generated_at, created_at, updated_at
		FROM payment_slips
		WHERE employee_id = $1 AND ($2 = false OR is_published = true)
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, employeeID, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment slips: %w", err)
	}
	defer rows.Close()

	var result []payslip.Slip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment slip: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment slips: %w", err)
	}

	return result, nil
}

func (r *paymentSlipRepository) SetPublished(ctx context.Context, id string, published bool) (payslip.Slip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_slips
		SET is_published = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, employee_id, payroll_id, month, file_path, is_published,
		          generated_at, created_at, updated_at
	`

	s, err := scanSlip(q.QueryRow(ctx, query, published, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Slip{}, payslip.ErrSlipNotFound
		}
		return payslip.Slip{}, fmt.Errorf("failed to publish payment slip: %w", err)
	}

	return s, nil
}
