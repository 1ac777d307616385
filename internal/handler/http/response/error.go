package response

import (
	"errors"
	"net/http"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/domain/auth"
	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/expense"
	"github.com/MyResearchRoom/mrrhr/internal/domain/holiday"
	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payslip"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
	"github.com/MyResearchRoom/mrrhr/internal/domain/user"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "A leave already covers this range")

	// Salary and payroll domain errors
	case errors.Is(err, salary.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Payroll already paid for this month")
	case errors.Is(err, payroll.ErrFutureMonth):
		BadRequest(w, "Future months are not allowed", nil)

	// Expense claim domain errors
	case errors.Is(err, expense.ErrClaimNotFound):
		NotFound(w, "Expense claim not found")
	case errors.Is(err, expense.ErrClaimAlreadyProcessed):
		Conflict(w, "Expense claim already processed")

	// Payment slip domain errors
	case errors.Is(err, payslip.ErrSlipNotFound):
		NotFound(w, "Payment slip not found")
	case errors.Is(err, payslip.ErrSlipExists):
		Conflict(w, "Payment slip already generated for this month")
	case errors.Is(err, payslip.ErrPayrollNotPaid):
		BadRequest(w, "Payroll is not paid for this month", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
