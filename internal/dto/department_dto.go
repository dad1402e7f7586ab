package dto

import "github.com/workforceapp/wfm_backend/internal/core/domain"

// CreateDepartmentRequest is the payload for registering a department.
type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	CompanyID string `json:"company" binding:"required,uuid"`
}

// UpdateDepartmentRequest is the payload for a partial department update.
type UpdateDepartmentRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	CompanyID *string `json:"company" binding:"omitempty,uuid"`
}

// DepartmentResponse is the API representation of a department.
type DepartmentResponse struct {
	DepartmentID string `json:"id"`
	CompanyID    string `json:"company"`
	Name         string `json:"name"`
	NumEmployees int    `json:"num_employees"`
}

// ToDepartmentResponse maps a domain department to its API representation.
func ToDepartmentResponse(department domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: department.DepartmentID,
		CompanyID:    department.CompanyID,
		Name:         department.Name,
		NumEmployees: department.NumEmployees,
	}
}

// ToDepartmentResponses maps a slice of domain departments to API representations.
func ToDepartmentResponses(departments []domain.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		responses = append(responses, ToDepartmentResponse(department))
	}
	return responses
}
