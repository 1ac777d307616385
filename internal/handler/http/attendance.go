package http

import (
	"net/http"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MyMonthLog(w http.ResponseWriter, r *http.Request)
	EmployeeMonthLog(w http.ResponseWriter, r *http.Request)
	DailyLog(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", resp)
}

// MyMonthLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyMonthLog(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromToken(r)
	if employeeID == "" {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	resp, err := h.attendanceService.MonthLog(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeMonthLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EmployeeMonthLog(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	resp, err := h.attendanceService.MonthLog(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DailyLog implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DailyLog(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	resp, err := h.attendanceService.DailyLog(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
