package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyResearchRoom/mrrhr/internal/domain/expense"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type expenseClaimRepository struct {
	db *database.DB
}

func NewExpenseClaimRepository(db *database.DB) expense.ClaimRepository {
	return &expenseClaimRepository{db: db}
}

func scanClaim(row pgx.Row) (expense.Claim, error) {
	var c expense.Claim
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Category, &c.Description, &c.Amount,
		&c.ExpenseDate, &c.ReceiptPath, &c.Status, &c.ReviewedBy,
		&c.ReviewedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *expenseClaimRepository) Create(ctx context.Context, c expense.Claim) (expense.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expense_claims (
			id, employee_id, category, description, amount, expense_date,
			receipt_path, status
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, category, description, amount, expense_date,
		          receipt_path, status, reviewed_by, reviewed_at, created_at, updated_at
	`

	created, err := scanClaim(q.QueryRow(ctx, query,
		c.EmployeeID, c.Category, c.Description, c.Amount, c.ExpenseDate,
		c.ReceiptPath, c.Status,
	))
	if err != nil {
		return expense.Claim{}, fmt.Errorf("failed to create expense claim: %w", err)
	}

	return created, nil
}

func (r *expenseClaimRepository) GetByID(ctx context.Context, id string) (expense.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, category, description, amount, expense_date,
		       receipt_path, status, reviewed_by, reviewed_at, created_at, updated_at
		FROM expense_claims
		WHERE id = $1
	`

	c, err := scanClaim(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Claim{}, expense.ErrClaimNotFound
		}
		return expense.Claim{}, fmt.Errorf("failed to get expense claim: %w", err)
	}

	return c, nil
}

func (r *expenseClaimRepository) UpdateStatus(ctx context.Context, id string, status expense.ClaimStatus, reviewedBy string) (expense.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expense_claims
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING id, employee_id, category, description, amount, expense_date,
		          receipt_path, status, reviewed_by, reviewed_at, created_at, updated_at
	`

	c, err := scanClaim(q.QueryRow(ctx, query, status, reviewedBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Claim{}, expense.ErrClaimNotFound
		}
		return expense.Claim{}, fmt.Errorf("failed to update expense claim: %w", err)
	}

	return c, nil
}

func (r *expenseClaimRepository) ListByEmployee(ctx context.Context, employeeID string) ([]expense.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, category, description, amount, expense_date,
		       receipt_path, status, reviewed_by, reviewed_at, created_at, updated_at
		FROM expense_claims
		WHERE employee_id = $1
		ORDER BY expense_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense claims: %w", err)
	}
	defer rows.Close()

	var result []expense.Claim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense claim: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense claims: %w", err)
	}

	return result, nil
}

func (r *expenseClaimRepository) ListByStatus(ctx context.Context, status expense.ClaimStatus) ([]expense.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.category, c.description, c.amount,
		       c.expense_date, c.receipt_path, c.status, c.reviewed_by,
		       c.reviewed_at, c.created_at, c.updated_at, e.name
		FROM expense_claims c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.status = $1
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense claims by status: %w", err)
	}
	defer rows.Close()

	var result []expense.Claim
	for rows.Next() {
		var c expense.Claim
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.Category, &c.Description, &c.Amount,
			&c.ExpenseDate, &c.ReceiptPath, &c.Status, &c.ReviewedBy,
			&c.ReviewedAt, &c.CreatedAt, &c.UpdatedAt, &c.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense claim: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense claims: %w", err)
	}

	return result, nil
}
