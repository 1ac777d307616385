package expense

import "context"

type ClaimRepository interface {
	Create(ctx context.Context, c Claim) (Claim, error)
	GetByID(ctx context.Context, id string) (Claim, error)
	UpdateStatus(ctx context.Context, id string, status ClaimStatus, reviewedBy string) (Claim, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Claim, error)
	ListByStatus(ctx context.Context, status ClaimStatus) ([]Claim, error)
}
