package repositories

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUserID retrieves the employee paired with a user, if any.
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// FindEmployees retrieves a paginated list of employees.
	FindEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)

	// FindEmployeesByDepartmentID retrieves all employees of a department.
	FindEmployeesByDepartmentID(ctx context.Context, departmentID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data. Each operation
// is a single transactional unit: the employee row, its paired user row and
// the derived counters of the affected company and departments all change
// together or not at all.
type EmployeeWriter interface {
	// CreateEmployeeWithUser persists a new employee together with its
	// paired user account and refreshes the affected counters.
	CreateEmployeeWithUser(ctx context.Context, employee domain.Employee, user domain.User) error

	// UpdateEmployeeWithUser updates an employee and, when user is non-nil,
	// its paired user account. previousCompanyID and previousDepartmentID
	// identify where the employee belonged before the update so that counters
	// on both sides of a move can be refreshed.
	UpdateEmployeeWithUser(ctx context.Context, employee domain.Employee, user *domain.User, previousCompanyID string, previousDepartmentID string) error

	// DeleteEmployeeWithUser removes an employee together with its paired
	// user account and refreshes the affected counters.
	DeleteEmployeeWithUser(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	TransactionManager
}
