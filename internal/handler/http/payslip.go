package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MyResearchRoom/mrrhr/internal/domain/payslip"
	"github.com/MyResearchRoom/mrrhr/internal/domain/user"
	"github.com/MyResearchRoom/mrrhr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	MySlips(w http.ResponseWriter, r *http.Request)
	EmployeeSlips(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	slipService payslip.SlipService
}

func NewPayslipHandler(slipService payslip.SlipService) PayslipHandler {
	return &PayslipHandlerImpl{slipService: slipService}
}

// Generate implements PayslipHandler.
func (h *PayslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payslip.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.slipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment slip generated", resp)
}

type publishRequest struct {
	Published bool `json:"published"`
}

// Publish implements PayslipHandler.
func (h *PayslipHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	slipID := chi.URLParam(r, "slipId")
	if slipID == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Publish decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.slipService.Publish(r.Context(), slipID, req.Published)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment slip updated", resp)
}

// MySlips implements PayslipHandler. Employees only see published slips.
func (h *PayslipHandlerImpl) MySlips(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	resp, err := h.slipService.ListForEmployee(r.Context(), employeeID, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeSlips implements PayslipHandler. HR sees unpublished slips too.
func (h *PayslipHandlerImpl) EmployeeSlips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.slipService.ListForEmployee(r.Context(), employeeID, false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Download implements PayslipHandler.
func (h *PayslipHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	slipID := chi.URLParam(r, "slipId")
	if slipID == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	data, filename, err := h.slipService.Download(r.Context(), slipID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Employees can only pull their own slips; HR and admins any.
	if role := user.Role(roleFromToken(r)); role == user.RoleEmployee {
		slips, err := h.slipService.ListForEmployee(r.Context(), employeeIDFromToken(r), true)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		owned := false
		for _, s := range slips {
			if s.ID == slipID {
				owned = true
				break
			}
		}
		if !owned {
			response.Forbidden(w, "Payment slip belongs to another employee")
			return
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
