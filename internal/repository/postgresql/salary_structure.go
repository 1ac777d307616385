package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) salary.StructureRepository {
	return &salaryStructureRepository{db: db}
}

func scanStructure(row pgx.Row) (salary.Structure, error) {
	var s salary.Structure
	var earningsJSON, deductionsJSON []byte

	err := row.Scan(
		&s.ID, &s.EmployeeID, &earningsJSON, &deductionsJSON, &s.CTC,
		&s.Increment, &s.Remark, &s.EffectiveFrom, &s.CreatedAt,
	)
	if err != nil {
		return salary.Structure{}, err
	}

	if err := json.Unmarshal(earningsJSON, &s.Earnings); err != nil {
		return salary.Structure{}, fmt.Errorf("failed to decode earnings: %w", err)
	}
	if err := json.Unmarshal(deductionsJSON, &s.Deductions); err != nil {
		return salary.Structure{}, fmt.Errorf("failed to decode deductions: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) Create(ctx context.Context, s salary.Structure) (salary.Structure, error) {
	q := GetQuerier(ctx, r.db)

	earningsJSON, err := json.Marshal(s.Earnings)
	if err != nil {
		return salary.Structure{}, fmt.Errorf("failed to encode earnings: %w", err)
	}
	deductionsJSON, err := json.Marshal(s.Deductions)
	if err != nil {
		return salary.Structure{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO salary_structures (
			id, employee_id, earnings, deductions, ctc, increment, remark, effective_from
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, earnings, deductions, ctc, increment, remark,
		          effective_from, created_at
	`

	created, err := scanStructure(q.QueryRow(ctx, query,
		s.EmployeeID, earningsJSON, deductionsJSON, s.CTC, s.Increment, s.Remark, s.EffectiveFrom,
	))
	if err != nil {
		return salary.Structure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return created, nil
}

func (r *salaryStructureRepository) LatestByEmployee(ctx context.Context, employeeID string) (salary.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, earnings, deductions, ctc, increment, remark,
		       effective_from, created_at
		FROM salary_structures
		WHERE employee_id = $1
		ORDER BY effective_from DESC, created_at DESC
		LIMIT 1
	`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Structure{}, salary.ErrStructureNotFound
		}
		return salary.Structure{}, fmt.Errorf("failed to get latest salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryStructureRepository) ListByEmployee(ctx context.Context, employeeID string) ([]salary.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, earnings, deductions, ctc, increment, remark,
		       effective_from, created_at
		FROM salary_structures
		WHERE employee_id = $1
		ORDER BY effective_from DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var result []salary.Structure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary structures: %w", err)
	}

	return result, nil
}
