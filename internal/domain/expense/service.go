package expense

import "context"

type ClaimService interface {
	Submit(ctx context.Context, employeeID string, req SubmitClaimRequest) (ClaimResponse, error)
	Review(ctx context.Context, reviewerID string, req ReviewClaimRequest) (ClaimResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]ClaimResponse, error)
	ListByStatus(ctx context.Context, status string) ([]ClaimResponse, error)
}
