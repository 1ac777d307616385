package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/leave"
)

type service struct {
	leaves leave.LeaveRepository
	logger *slog.Logger
}

func NewService(leaves leave.LeaveRepository, logger *slog.Logger) leave.LeaveService {
	return &service{
		leaves: leaves,
		logger: logger,
	}
}

func (s *service) Apply(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	overlapping, err := s.leaves.HasOverlapping(ctx, employeeID, from, to)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaves.Create(ctx, leave.LeaveApplication{
		EmployeeID: employeeID,
		FromDate:   from,
		ToDate:     to,
		Type:       leave.LeaveType(req.Type),
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave applied",
		"employee_id", employeeID, "from", req.FromDate, "to", req.ToDate, "type", req.Type)

	return project(created), nil
}

func (s *service) Review(ctx context.Context, reviewerID string, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	app, err := s.leaves.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if app.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	updated, err := s.leaves.UpdateStatus(ctx, req.ID, leave.LeaveStatus(req.Status), reviewerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.logger.InfoContext(ctx, "leave reviewed",
		"leave_id", req.ID, "status", req.Status, "reviewer_id", reviewerID)

	return project(updated), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	apps, err := s.leaves.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return projectAll(apps), nil
}

func (s *service) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	apps, err := s.leaves.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return projectAll(apps), nil
}

func project(app leave.LeaveApplication) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         app.ID,
		EmployeeID: app.EmployeeID,
		FromDate:   app.FromDate.Format("2006-01-02"),
		ToDate:     app.ToDate.Format("2006-01-02"),
		Type:       string(app.Type),
		Status:     string(app.Status),
		Reason:     app.Reason,
	}
	if app.EmployeeName != nil {
		resp.EmployeeName = *app.EmployeeName
	}
	return resp
}

func projectAll(apps []leave.LeaveApplication) []leave.LeaveResponse {
	result := make([]leave.LeaveResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, project(app))
	}
	return result
}
