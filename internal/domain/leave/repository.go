package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, app LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, reviewedBy string) (LeaveApplication, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveApplication, error)
	// ListApprovedOverlapping returns approved applications whose range
	// intersects [from, to] (from_date <= to AND to_date >= from).
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveApplication, error)
	HasOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error)
}
