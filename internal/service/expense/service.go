package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/expense"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/storage"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
)

type service struct {
	claims expense.ClaimRepository
	files  storage.FileStorage
	logger *slog.Logger
}

func NewService(claims expense.ClaimRepository, files storage.FileStorage, logger *slog.Logger) expense.ClaimService {
	return &service{
		claims: claims,
		files:  files,
		logger: logger,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req expense.SubmitClaimRequest) (expense.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ClaimResponse{}, err
	}

	expenseDate, _ := time.Parse("2006-01-02", req.ExpenseDate)

	created, err := s.claims.Create(ctx, expense.Claim{
		EmployeeID:  employeeID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		ReceiptPath: req.ReceiptPath,
		Status:      expense.StatusPending,
	})
	if err != nil {
		return expense.ClaimResponse{}, err
	}

	s.logger.InfoContext(ctx, "expense claim submitted",
		"employee_id", employeeID, "claim_id", created.ID, "amount", req.Amount)

	return s.project(created), nil
}

func (s *service) Review(ctx context.Context, reviewerID string, req expense.ReviewClaimRequest) (expense.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ClaimResponse{}, err
	}

	claim, err := s.claims.GetByID(ctx, req.ID)
	if err != nil {
		return expense.ClaimResponse{}, err
	}
	if claim.Status != expense.StatusPending {
		return expense.ClaimResponse{}, expense.ErrClaimAlreadyProcessed
	}

	updated, err := s.claims.UpdateStatus(ctx, req.ID, expense.ClaimStatus(req.Status), reviewerID)
	if err != nil {
		return expense.ClaimResponse{}, err
	}

	s.logger.InfoContext(ctx, "expense claim reviewed",
		"claim_id", req.ID, "status", req.Status, "reviewer_id", reviewerID)

	return s.project(updated), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]expense.ClaimResponse, error) {
	claims, err := s.claims.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.projectAll(claims), nil
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]expense.ClaimResponse, error) {
	switch expense.ClaimStatus(status) {
	case expense.StatusPending, expense.StatusApproved, expense.StatusRejected:
	default:
		return nil, validator.ValidationErrors{
			{Field: "status", Message: "must be 'pending', 'approved' or 'rejected'"},
		}
	}

	claims, err := s.claims.ListByStatus(ctx, expense.ClaimStatus(status))
	if err != nil {
		return nil, err
	}
	return s.projectAll(claims), nil
}

func (s *service) project(claim expense.Claim) expense.ClaimResponse {
	resp := expense.ClaimResponse{
		ID:          claim.ID,
		EmployeeID:  claim.EmployeeID,
		Category:    claim.Category,
		Description: claim.Description,
		Amount:      claim.Amount,
		ExpenseDate: claim.ExpenseDate.Format("2006-01-02"),
		Status:      string(claim.Status),
	}
	if claim.EmployeeName != nil {
		resp.EmployeeName = *claim.EmployeeName
	}
	if claim.ReceiptPath != nil {
		url := s.files.URL(*claim.ReceiptPath)
		resp.ReceiptURL = &url
	}
	return resp
}

func (s *service) projectAll(claims []expense.Claim) []expense.ClaimResponse {
	result := make([]expense.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		result = append(result, s.project(claim))
	}
	return result
}
