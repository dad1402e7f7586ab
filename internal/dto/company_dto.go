package dto

import "github.com/workforceapp/wfm_backend/internal/core/domain"

// CreateCompanyRequest is the payload for registering a company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateCompanyRequest is the payload for a partial company update.
type UpdateCompanyRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// CompanyResponse is the API representation of a company. The counters are
// derived server-side and read only.
type CompanyResponse struct {
	CompanyID      string `json:"id"`
	Name           string `json:"name"`
	NumDepartments int    `json:"num_departments"`
	NumEmployees   int    `json:"num_employees"`
}

// ToCompanyResponse maps a domain company to its API representation.
func ToCompanyResponse(company domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:      company.CompanyID,
		Name:           company.Name,
		NumDepartments: company.NumDepartments,
		NumEmployees:   company.NumEmployees,
	}
}

// ToCompanyResponses maps a slice of domain companies to API representations.
func ToCompanyResponses(companies []domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, ToCompanyResponse(company))
	}
	return responses
}
