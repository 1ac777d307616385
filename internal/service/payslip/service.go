package payslip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payroll"
	"github.com/MyResearchRoom/mrrhr/internal/domain/payslip"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/storage"
)

type service struct {
	slips     payslip.SlipRepository
	payrolls  payroll.PayrollRepository
	employees employee.EmployeeRepository
	files     storage.FileStorage
	now       func() time.Time
	logger    *slog.Logger
}

func NewService(
	slips payslip.SlipRepository,
	payrolls payroll.PayrollRepository,
	employees employee.EmployeeRepository,
	files storage.FileStorage,
	logger *slog.Logger,
) payslip.SlipService {
	return &service{
		slips:     slips,
		payrolls:  payrolls,
		employees: employees,
		files:     files,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *service) Generate(ctx context.Context, req payslip.GenerateSlipRequest) (payslip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.SlipResponse{}, err
	}

	p, err := s.payrolls.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.Month)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			return payslip.SlipResponse{}, payslip.ErrPayrollNotPaid
		}
		return payslip.SlipResponse{}, err
	}

	if _, err := s.slips.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.Month); err == nil {
		return payslip.SlipResponse{}, payslip.ErrSlipExists
	} else if !errors.Is(err, payslip.ErrSlipNotFound) {
		return payslip.SlipResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.SlipResponse{}, err
	}

	pdfBytes, err := renderSlip(emp, p)
	if err != nil {
		return payslip.SlipResponse{}, err
	}

	path := fmt.Sprintf("payslips/%s/%s.pdf", req.EmployeeID, req.Month)
	if _, err := s.files.Upload(ctx, bytes.NewReader(pdfBytes), path, "application/pdf"); err != nil {
		return payslip.SlipResponse{}, fmt.Errorf("failed to store payment slip: %w", err)
	}

	created, err := s.slips.Create(ctx, payslip.Slip{
		EmployeeID:  req.EmployeeID,
		PayrollID:   p.ID,
		Month:       req.Month,
		FilePath:    path,
		IsPublished: false,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		return payslip.SlipResponse{}, err
	}

	s.logger.InfoContext(ctx, "payment slip generated",
		"employee_id", req.EmployeeID, "month", req.Month, "slip_id", created.ID)

	return s.project(created), nil
}

func (s *service) Publish(ctx context.Context, id string, published bool) (payslip.SlipResponse, error) {
	updated, err := s.slips.SetPublished(ctx, id, published)
	if err != nil {
		return payslip.SlipResponse{}, err
	}

	s.logger.InfoContext(ctx, "payment slip publish state changed",
		"slip_id", id, "published", published)

	return s.project(updated), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string, publishedOnly bool) ([]payslip.SlipResponse, error) {
	slips, err := s.slips.ListByEmployee(ctx, employeeID, publishedOnly)
	if err != nil {
		return nil, err
	}

	result := make([]payslip.SlipResponse, 0, len(slips))
	for _, slip := range slips {
		result = append(result, s.project(slip))
	}
	return result, nil
}

func (s *service) Download(ctx context.Context, id string) ([]byte, string, error) {
	slip, err := s.slips.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := s.files.Download(ctx, slip.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read payment slip file: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s.pdf", slip.Month)
	return data, filename, nil
}

func (s *service) project(slip payslip.Slip) payslip.SlipResponse {
	return payslip.SlipResponse{
		ID:          slip.ID,
		EmployeeID:  slip.EmployeeID,
		Month:       slip.Month,
		FileURL:     s.files.URL(slip.FilePath),
		IsPublished: slip.IsPublished,
		GeneratedAt: slip.GeneratedAt.Format(time.RFC3339),
	}
}
