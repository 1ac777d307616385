package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MyResearchRoom/mrrhr/internal/domain/employee"
	"github.com/MyResearchRoom/mrrhr/internal/domain/user"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/crypto"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner executes fn atomically. Production wires it to a database
// transaction; tests pass a pass-through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type service struct {
	employees employee.EmployeeRepository
	users     user.UserRepository
	codec     *crypto.Codec
	inTx      TxRunner
	logger    *slog.Logger
}

func NewService(
	employees employee.EmployeeRepository,
	users user.UserRepository,
	codec *crypto.Codec,
	inTx TxRunner,
	logger *slog.Logger,
) employee.EmployeeService {
	return &service{
		employees: employees,
		users:     users,
		codec:     codec,
		inTx:      inTx,
		logger:    logger,
	}
}

func (s *service) Onboard(ctx context.Context, req employee.OnboardEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	accountNumber, err := s.encryptOptional(req.AccountNumber)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt account number: %w", err)
	}
	ifscCode, err := s.encryptOptional(req.IFSCCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt ifsc code: %w", err)
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	var created employee.Employee
	err = s.inTx(ctx, func(ctx context.Context) error {
		u, err := s.users.Create(ctx, user.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		created, err = s.employees.Create(ctx, employee.Employee{
			UserID:            u.ID,
			Name:              req.Name,
			Email:             req.Email,
			Phone:             req.Phone,
			Department:        req.Department,
			Designation:       req.Designation,
			JoiningDate:       joiningDate,
			Status:            employee.StatusActive,
			CTC:               req.CTC,
			PaymentMethod:     req.PaymentMethod,
			AccountHolderName: req.AccountHolderName,
			BankName:          req.BankName,
			AccountNumber:     accountNumber,
			IFSCCode:          ifscCode,
		})
		if err != nil {
			return err
		}

		return s.users.LinkEmployee(ctx, u.ID, created.ID)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee onboarded", "employee_id", created.ID)

	return s.project(created)
}

func (s *service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.project(e)
}

func (s *service) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp, err := s.project(e)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, resp)
	}

	return result, total, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if err := s.employees.UpdateStatus(ctx, id, employee.StatusInactive); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "employee deactivated", "employee_id", id)
	return nil
}

// project builds the display projection, decrypting the bank fields.
func (s *service) project(e employee.Employee) (employee.EmployeeResponse, error) {
	accountNumber, err := s.decryptOptional(e.AccountNumber)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to decrypt account number: %w", err)
	}
	ifscCode, err := s.decryptOptional(e.IFSCCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to decrypt ifsc code: %w", err)
	}

	return employee.EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Department:        e.Department,
		Designation:       e.Designation,
		JoiningDate:       e.JoiningDate.Format("2006-01-02"),
		Status:            string(e.Status),
		CTC:               e.CTC,
		PaymentMethod:     e.PaymentMethod,
		AccountHolderName: e.AccountHolderName,
		BankName:          e.BankName,
		AccountNumber:     accountNumber,
		IFSCCode:          ifscCode,
	}, nil
}

func (s *service) encryptOptional(value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	encrypted, err := s.codec.EncryptField(*value)
	if err != nil {
		return nil, err
	}
	return &encrypted, nil
}

func (s *service) decryptOptional(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	decrypted, err := s.codec.DecryptField(*value)
	if err != nil {
		return nil, err
	}
	return &decrypted, nil
}
