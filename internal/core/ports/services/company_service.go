package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

// CompanySvcFacade defines the application service surface for companies.
type CompanySvcFacade interface {
	// CreateCompany registers a new company with zeroed counters.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// GetCompanyByID retrieves a company by its ID.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves a paginated list of companies.
	ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)

	// UpdateCompany applies a partial update to a company.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error)

	// DeleteCompany removes a company with everything it owns.
	DeleteCompany(ctx context.Context, companyID string) error
}
