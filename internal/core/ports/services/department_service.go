package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

// DepartmentSvcFacade defines the application service surface for departments.
type DepartmentSvcFacade interface {
	// CreateDepartment registers a new department under an existing company.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error)

	// GetDepartmentByID retrieves a department by its ID.
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves a paginated list of departments.
	ListDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error)

	// ListDepartmentsByCompany retrieves all departments of a company.
	ListDepartmentsByCompany(ctx context.Context, companyID string) ([]domain.Department, error)

	// UpdateDepartment applies a partial update to a department.
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, updaterUserID string) (*domain.Department, error)

	// DeleteDepartment removes a department with its employees.
	DeleteDepartment(ctx context.Context, departmentID string) error
}
