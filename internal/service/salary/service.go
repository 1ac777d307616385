package salary

import (
	"context"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/salary"
)

type service struct {
	structures salary.StructureRepository
	employees  employee.EmployeeRepository
	logger     *slog.Logger
}

func NewService(structures salary.StructureRepository, employees employee.EmployeeRepository, logger *slog.Logger) salary.StructureService {
	return &service{
		structures: structures,
		employees:  employees,
		logger:     logger,
	}
}

func (s *service) Revise(ctx context.Context, req salary.ReviseStructureRequest) (salary.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.StructureResponse{}, err
	}

	// Fail fast on unknown employees; structures are append-only so a bad
	// row would linger forever.
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.StructureResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	created, err := s.structures.Create(ctx, salary.Structure{
		EmployeeID:    req.EmployeeID,
		Earnings:      req.Earnings,
		Deductions:    req.Deductions,
		CTC:           req.CTC,
		Increment:     req.Increment,
		Remark:        req.Remark,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		return salary.StructureResponse{}, err
	}

	s.logger.InfoContext(ctx, "salary structure revised",
		"employee_id", req.EmployeeID, "effective_from", req.EffectiveFrom)

	return project(created), nil
}

func (s *service) Latest(ctx context.Context, employeeID string) (salary.StructureResponse, error) {
	structure, err := s.structures.LatestByEmployee(ctx, employeeID)
	if err != nil {
		return salary.StructureResponse{}, err
	}
	return project(structure), nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]salary.StructureResponse, error) {
	structures, err := s.structures.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]salary.StructureResponse, 0, len(structures))
	for _, structure := range structures {
		result = append(result, project(structure))
	}
	return result, nil
}

func project(structure salary.Structure) salary.StructureResponse {
	gross := structure.EarningTotal()
	deduction := structure.DeductionTotal()

	return salary.StructureResponse{
		ID:            structure.ID,
		EmployeeID:    structure.EmployeeID,
		Earnings:      structure.Earnings,
		Deductions:    structure.Deductions,
		CTC:           structure.CTC,
		Increment:     structure.Increment,
		Remark:        structure.Remark,
		EffectiveFrom: structure.EffectiveFrom.Format("2006-01-02"),
		GrossSalary:   gross,
		Deduction:     deduction,
		NetSalary:     gross.Sub(deduction),
	}
}
