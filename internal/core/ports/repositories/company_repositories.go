package repositories

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanies retrieves a paginated list of companies.
	FindCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data. Every write runs
// as a single transactional unit that also refreshes the company's derived
// counters.
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany updates a company's mutable fields.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeleteCompany removes a company together with its departments,
	// employees and the users paired with those employees.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	TransactionManager
}
