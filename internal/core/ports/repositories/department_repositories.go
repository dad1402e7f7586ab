package repositories

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a specific department by its ID.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// FindDepartments retrieves a paginated list of departments.
	FindDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error)

	// FindDepartmentsByCompanyID retrieves all departments of a company.
	FindDepartmentsByCompanyID(ctx context.Context, companyID string) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data. Structural
// changes recompute the owning company's department count inside the same
// transactional unit; deletes additionally cascade to the department's
// employees and their paired users.
type DepartmentWriter interface {
	// SaveDepartment persists a new department.
	SaveDepartment(ctx context.Context, department domain.Department) error

	// UpdateDepartment updates a department's mutable fields. When the
	// department moved between companies both companies' counters are
	// refreshed.
	UpdateDepartment(ctx context.Context, department domain.Department, previousCompanyID string) error

	// DeleteDepartment removes a department, its employees and their users.
	DeleteDepartment(ctx context.Context, departmentID string, companyID string) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
	TransactionManager
}
