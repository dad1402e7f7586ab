package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentRepositoryFacade
	companyRepo    portsrepo.CompanyRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
}

// NewEmployeeService creates the employee application service.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	departmentRepo portsrepo.DepartmentRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		companyRepo:    companyRepo,
		userRepo:       userRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// validateOrgReferences checks that the department exists and belongs to
// the given company.
func (s *employeeService) validateOrgReferences(ctx context.Context, companyID string, departmentID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("company", "referenced company does not exist")
		}
		return err
	}

	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("department", "referenced department does not exist")
		}
		return err
	}
	if department.CompanyID != companyID {
		return apperrors.NewValidationError("department", "department does not belong to the specified company")
	}
	return nil
}

func parseHiredOn(value string) (*time.Time, error) {
	hiredOn, err := time.Parse(dto.HiredOnLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError("hired_on", "must be a date in YYYY-MM-DD format")
	}
	return &hiredOn, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	status := domain.StatusApplicationReceived
	if req.Status != "" {
		status = domain.HiringStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
		}
	}
	if req.HiredOn != nil && status != domain.StatusHired {
		return nil, apperrors.NewValidationError("hired_on", "hired_on may only be set for hired employees")
	}

	if err := s.validateOrgReferences(ctx, req.CompanyID, req.DepartmentID); err != nil {
		return nil, err
	}

	now := time.Now()
	user, err := buildUser(req.User, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		UserID:       user.UserID,
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Address:      req.Address,
		Designation:  req.Designation,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if status == domain.StatusHired {
		if req.HiredOn != nil {
			hiredOn, err := parseHiredOn(*req.HiredOn)
			if err != nil {
				return nil, err
			}
			employee.HiredOn = hiredOn
		} else {
			hiredOn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			employee.HiredOn = &hiredOn
		}
	}
	employee.NormalizeHiredOn()

	if err := s.employeeRepo.CreateEmployeeWithUser(ctx, employee, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "a user or employee with this email already exists")
		}
		s.LogError(ctx, err, "failed to create employee", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("department_id", employee.DepartmentID),
		slog.String("status", string(employee.Status)))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string, requesterUserID string, requesterRole domain.UserRole) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !requesterRole.IsManagerial() && employee.UserID != requesterUserID {
		return nil, apperrors.ErrForbidden
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByUserID(ctx, userID)
}

func (s *employeeService) ListEmployees(ctx context.Context, limit int, offset int, requesterUserID string, requesterRole domain.UserRole) ([]domain.Employee, error) {
	if requesterRole.IsManagerial() {
		return s.employeeRepo.FindEmployees(ctx, limit, offset)
	}

	// Employee-role callers only ever see their own record.
	employee, err := s.employeeRepo.FindEmployeeByUserID(ctx, requesterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Employee{}, nil
		}
		return nil, err
	}
	return []domain.Employee{*employee}, nil
}

func (s *employeeService) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindEmployeesByDepartmentID(ctx, departmentID)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	previousCompanyID := employee.CompanyID
	previousDepartmentID := employee.DepartmentID
	now := time.Now()

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Mobile != nil {
		employee.Mobile = *req.Mobile
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.Designation != nil {
		employee.Designation = *req.Designation
	}
	if req.CompanyID != nil {
		employee.CompanyID = *req.CompanyID
	}
	if req.DepartmentID != nil {
		employee.DepartmentID = *req.DepartmentID
	}
	if req.CompanyID != nil || req.DepartmentID != nil {
		if err := s.validateOrgReferences(ctx, employee.CompanyID, employee.DepartmentID); err != nil {
			return nil, err
		}
	}

	if req.Status != nil && domain.HiringStatus(*req.Status) != employee.Status {
		target := domain.HiringStatus(*req.Status)
		if !target.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		if err := employee.Transition(target, now); err != nil {
			return nil, err
		}
	}

	if req.HiredOn != nil {
		if employee.Status != domain.StatusHired {
			return nil, apperrors.NewValidationError("hired_on", "hired_on may only be set for hired employees")
		}
		hiredOn, err := parseHiredOn(*req.HiredOn)
		if err != nil {
			return nil, err
		}
		employee.HiredOn = hiredOn
	}
	employee.NormalizeHiredOn()
	employee.LastUpdatedAt = now
	employee.LastUpdatedBy = updaterUserID

	var pairedUser *domain.User
	if req.User != nil {
		pairedUser, err = s.userRepo.FindUserByID(ctx, employee.UserID)
		if err != nil {
			return nil, err
		}
		if err := mergeUserUpdate(pairedUser, *req.User, updaterUserID, now); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.UpdateEmployeeWithUser(ctx, *employee, pairedUser, previousCompanyID, previousDepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "a user or employee with this email already exists")
		}
		s.LogError(ctx, err, "failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteEmployeeWithUser(ctx, *employee); err != nil {
		return err
	}

	s.LogInfo(ctx, "employee deleted",
		slog.String("employee_id", employeeID),
		slog.String("user_id", employee.UserID))
	return nil
}
