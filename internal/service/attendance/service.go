package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/attendance"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/dates"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/validator"
)

type service struct {
	attendances attendance.AttendanceRepository
	now         func() time.Time
	logger      *slog.Logger
}

func NewService(attendances attendance.AttendanceRepository, logger *slog.Logger) attendance.AttendanceService {
	return &service{
		attendances: attendances,
		now:         time.Now,
		logger:      logger,
	}
}

// NewServiceWithClock is used by tests to pin the current time.
func NewServiceWithClock(attendances attendance.AttendanceRepository, now func() time.Time, logger *slog.Logger) attendance.AttendanceService {
	return &service{
		attendances: attendances,
		now:         now,
		logger:      logger,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now().UTC()
	today := dates.Truncate(now)

	_, err := s.attendances.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	// Provisional status until check-out completes the day.
	status := attendance.StatusOnTime
	if isLate(now) {
		status = attendance.StatusLate
	}

	created, err := s.attendances.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		InTime:     &now,
		Status:     status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee checked in", "employee_id", employeeID, "status", status)

	return project(created), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now().UTC()
	today := dates.Truncate(now)

	att, err := s.attendances.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if att.OutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	status := DetermineStatus(att.InTime, &now)

	updated, err := s.attendances.SetCheckOut(ctx, att.ID, now, status)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee checked out", "employee_id", employeeID, "status", status)

	return project(updated), nil
}

func (s *service) MonthLog(ctx context.Context, employeeID string, month string) (attendance.MonthLogResponse, error) {
	from, to, err := dates.MonthBounds(month)
	if err != nil {
		return attendance.MonthLogResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be YYYY-MM"},
		}
	}

	records, err := s.attendances.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthLogResponse{}, err
	}

	presentDays := 0
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		if att.Status.CountsAsPresent() {
			presentDays++
		}
		responses = append(responses, project(att))
	}

	return attendance.MonthLogResponse{
		EmployeeID:  employeeID,
		Month:       month,
		PresentDays: presentDays,
		Records:     responses,
	}, nil
}

func (s *service) DailyLog(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	records, err := s.attendances.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily log: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, project(att))
	}

	return responses, nil
}

func project(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		Status:     string(att.Status),
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.InTime != nil {
		in := att.InTime.Format(time.RFC3339)
		resp.InTime = &in
	}
	if att.OutTime != nil {
		out := att.OutTime.Format(time.RFC3339)
		resp.OutTime = &out
	}
	return resp
}
