package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `
	l.id, l.employee_id, l.from_date, l.to_date, l.type, l.status, l.reason,
	l.reviewed_by, l.reviewed_at, l.created_at, l.updated_at
`

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func scanLeave(row pgx.Row) (leave.LeaveApplication, error) {
	var app leave.LeaveApplication
	err := row.Scan(
		&app.ID, &app.EmployeeID, &app.FromDate, &app.ToDate, &app.Type,
		&app.Status, &app.Reason, &app.ReviewedBy, &app.ReviewedAt,
		&app.CreatedAt, &app.UpdatedAt,
	)
	return app, err
}

func (r *leaveRepository) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (id, employee_id, from_date, to_date, type, status, reason)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, from_date, to_date, type, status, reason,
		          reviewed_by, reviewed_at, created_at, updated_at
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		app.EmployeeID, app.FromDate, app.ToDate, app.Type, app.Status, app.Reason,
	))
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_applications l WHERE l.id = $1`

	app, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application: %w", err)
	}

	return app, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, reviewedBy string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $3
		RETURNING id, employee_id, from_date, to_date, type, status, reason,
		          reviewed_by, reviewed_at, created_at, updated_at
	`

	app, err := scanLeave(q.QueryRow(ctx, query, status, reviewedBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return app, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_applications l
		WHERE l.employee_id = $1
		ORDER BY l.from_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.name
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications by status: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveApplication
	for rows.Next() {
		var app leave.LeaveApplication
		if err := rows.Scan(
			&app.ID, &app.EmployeeID, &app.FromDate, &app.ToDate, &app.Type,
			&app.Status, &app.Reason, &app.ReviewedBy, &app.ReviewedAt,
			&app.CreatedAt, &app.UpdatedAt, &app.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		result = append(result, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave applications: %w", err)
	}

	return result, nil
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_applications l
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND l.from_date <= $3
		  AND l.to_date >= $2
		ORDER BY l.from_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}

	return exists, nil
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveApplication, error) {
	var result []leave.LeaveApplication
	for rows.Next() {
		app, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		result = append(result, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave applications: %w", err)
	}
	return result, nil
}
