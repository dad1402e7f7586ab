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

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company application service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("name", "a company with this name already exists")
		}
		s.LogError(ctx, err, "failed to save company", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyService) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	return s.companyRepo.FindCompanies(ctx, limit, offset)
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = updaterUserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("name", "a company with this name already exists")
		}
		s.LogError(ctx, err, "failed to update company", slog.String("company_id", companyID))
		return nil, err
	}

	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID string) error {
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "company deleted", slog.String("company_id", companyID))
	return nil
}
