package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	StructureHistory(w http.ResponseWriter, r *http.Request)
	ReviseStructure(w http.ResponseWriter, r *http.Request)
	PaidRuns(w http.ResponseWriter, r *http.Request)
	Pays(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	CurrentStats(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService   payroll.PayrollService
	structureService salary.StructureService
}

func NewPayrollHandler(payrollService payroll.PayrollService, structureService salary.StructureService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService:   payrollService,
		structureService: structureService,
	}
}

func monthOrCurrent(r *http.Request) string {
	if month := r.URL.Query().Get("month"); month != "" {
		return month
	}
	return time.Now().UTC().Format("2006-01")
}

// MonthlySummary implements PayrollHandler.
func (h *PayrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	filter := payroll.SummaryFilter{
		Month: monthOrCurrent(r),
		Page:  1,
		Limit: 20,
	}

	q := r.URL.Query()
	if v := q.Get("department"); v != "" {
		filter.Department = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filter.Limit = v
	}

	summaries, total, err := h.payrollService.MonthlySummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, summaries, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Detail implements PayrollHandler.
func (h *PayrollHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.payrollService.Detail(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// StructureHistory implements PayrollHandler.
func (h *PayrollHandlerImpl) StructureHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.structureService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ReviseStructure implements PayrollHandler.
func (h *PayrollHandlerImpl) ReviseStructure(w http.ResponseWriter, r *http.Request) {
	var req salary.ReviseStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReviseStructure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeId")
	if req.EmployeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.structureService.Revise(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure revised", resp)
}

// PaidRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) PaidRuns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.PaidRuns(r.Context(), monthOrCurrent(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Pays implements PayrollHandler.
func (h *PayrollHandlerImpl) Pays(w http.ResponseWriter, r *http.Request) {
	var req payroll.PaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Pays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.Pays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay-run committed", resp)
}

// Stats implements PayrollHandler.
func (h *PayrollHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.Stats(r.Context(), monthOrCurrent(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CurrentStats implements PayrollHandler.
func (h *PayrollHandlerImpl) CurrentStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.CurrentStats(r.Context(), monthOrCurrent(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
