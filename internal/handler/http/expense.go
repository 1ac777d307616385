package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MyResearchRoom/mrrhr/internal/domain/expense"
	"github.com/MyResearchRoom/mrrhr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	MyClaims(w http.ResponseWriter, r *http.Request)
	ListByStatus(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	claimService expense.ClaimService
}

func NewExpenseHandler(claimService expense.ClaimService) ExpenseHandler {
	return &ExpenseHandlerImpl{claimService: claimService}
}

// Submit implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	var req expense.SubmitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.claimService.Submit(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense claim submitted", resp)
}

// Review implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req expense.ReviewClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "claimId")
	if req.ID == "" {
		response.BadRequest(w, "Claim ID is required", nil)
		return
	}

	resp, err := h.claimService.Review(r.Context(), userIDFromToken(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense claim reviewed", resp)
}

// MyClaims implements ExpenseHandler.
func (h *ExpenseHandlerImpl) MyClaims(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	resp, err := h.claimService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByStatus implements ExpenseHandler.
func (h *ExpenseHandlerImpl) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = string(expense.StatusPending)
	}

	resp, err := h.claimService.ListByStatus(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
