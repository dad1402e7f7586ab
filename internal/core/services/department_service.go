package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
	companyRepo    portsrepo.CompanyRepositoryFacade
}

// NewDepartmentService creates the department application service.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo, companyRepo: companyRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

// ensureCompanyExists turns a missing company reference into a field-level
// validation error instead of a bare not-found.
func (s *departmentService) ensureCompanyExists(ctx context.Context, companyID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("company", "referenced company does not exist")
		}
		return err
	}
	return nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error) {
	if err := s.ensureCompanyExists(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		CompanyID:    req.CompanyID,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		s.LogError(ctx, err, "failed to save department", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "department created", slog.String("department_id", department.DepartmentID), slog.String("company_id", department.CompanyID))
	return &department, nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	return s.departmentRepo.FindDepartmentByID(ctx, departmentID)
}

func (s *departmentService) ListDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error) {
	return s.departmentRepo.FindDepartments(ctx, limit, offset)
}

func (s *departmentService) ListDepartmentsByCompany(ctx context.Context, companyID string) ([]domain.Department, error) {
	return s.departmentRepo.FindDepartmentsByCompanyID(ctx, companyID)
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterUserID string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	previousCompanyID := department.CompanyID

	if req.CompanyID != nil && *req.CompanyID != department.CompanyID {
		if err := s.ensureCompanyExists(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
		department.CompanyID = *req.CompanyID
	}
	if req.Name != nil {
		department.Name = *req.Name
	}
	department.LastUpdatedAt = time.Now()
	department.LastUpdatedBy = updaterUserID

	if err := s.departmentRepo.UpdateDepartment(ctx, *department, previousCompanyID); err != nil {
		s.LogError(ctx, err, "failed to update department", slog.String("department_id", departmentID))
		return nil, err
	}

	return department, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return err
	}

	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID, department.CompanyID); err != nil {
		return err
	}

	s.LogInfo(ctx, "department deleted", slog.String("department_id", departmentID), slog.String("company_id", department.CompanyID))
	return nil
}
