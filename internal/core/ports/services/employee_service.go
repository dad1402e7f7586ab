package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

// EmployeeSvcFacade defines the application service surface for employees.
// Read operations enforce the read-own-data rule for the Employee role;
// write operations assume the caller was already gated to a managerial role.
type EmployeeSvcFacade interface {
	// CreateEmployee validates and persists a new employee together with
	// its paired user account.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee. Callers with the Employee role
	// may only read their own record.
	GetEmployeeByID(ctx context.Context, employeeID string, requesterUserID string, requesterRole domain.UserRole) (*domain.Employee, error)

	// GetEmployeeByUserID retrieves the employee paired with a user, if any.
	GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// ListEmployees retrieves employees visible to the requester. Callers
	// with the Employee role only see their own record.
	ListEmployees(ctx context.Context, limit int, offset int, requesterUserID string, requesterRole domain.UserRole) ([]domain.Employee, error)

	// ListEmployeesByDepartment retrieves all employees of a department.
	ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]domain.Employee, error)

	// UpdateEmployee applies a partial update, running any requested hiring
	// status change through the lifecycle rules.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error)

	// DeleteEmployee removes an employee together with its paired user.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
