package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	"github.com/workforceapp/wfm_backend/internal/models"
	"github.com/workforceapp/wfm_backend/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db DBPool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, company_id, department_id, user_id, name, email, mobile, address, designation, status, hired_on, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeRow(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.CompanyID,
		&m.DepartmentID,
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Mobile,
		&m.Address,
		&m.Designation,
		&m.Status,
		&m.HiredOn,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		m, scanErr := scanEmployeeRow(row)
		if scanErr != nil {
			return models.Employee{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	modelEmployee, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	domainEmployee := mapping.ToDomainEmployee(*modelEmployee)
	return &domainEmployee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1;`
	modelEmployee, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by user ID %s: %w", userID, err)
	}
	domainEmployee := mapping.ToDomainEmployee(*modelEmployee)
	return &domainEmployee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PgxEmployeeRepository) FindEmployeesByDepartmentID(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department_id = $1 ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees of department %s: %w", departmentID, err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// CreateEmployeeWithUser inserts the user account, the employee row and the
// counter refreshes as a single transaction. A failure at any step leaves
// nothing behind.
func (r *PgxEmployeeRepository) CreateEmployeeWithUser(ctx context.Context, employee domain.Employee, user domain.User) error {
	modelEmployee := mapping.ToModelEmployee(employee)
	modelUser := mapping.ToModelUser(user)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		INSERT INTO users (user_id, email, password_hash, role, is_staff, is_superuser, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, userQuery,
		modelUser.UserID,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.IsStaff,
		modelUser.IsSuperuser,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save paired user")
	}

	employeeQuery := `
		INSERT INTO employees (employee_id, company_id, department_id, user_id, name, email, mobile, address, designation, status, hired_on, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, employeeQuery,
		modelEmployee.EmployeeID,
		modelEmployee.CompanyID,
		modelEmployee.DepartmentID,
		modelEmployee.UserID,
		modelEmployee.Name,
		modelEmployee.Email,
		modelEmployee.Mobile,
		modelEmployee.Address,
		modelEmployee.Designation,
		modelEmployee.Status,
		modelEmployee.HiredOn,
		modelEmployee.CreatedAt,
		modelEmployee.CreatedBy,
		modelEmployee.LastUpdatedAt,
		modelEmployee.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save employee")
	}

	if err := refreshCompanyCounters(ctx, tx, employee.CompanyID); err != nil {
		return err
	}
	if err := refreshDepartmentCounters(ctx, tx, employee.DepartmentID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateEmployeeWithUser updates the employee row, optionally its paired
// user, and refreshes the counters of every company and department touched
// by the change, all in one transaction.
func (r *PgxEmployeeRepository) UpdateEmployeeWithUser(ctx context.Context, employee domain.Employee, user *domain.User, previousCompanyID string, previousDepartmentID string) error {
	modelEmployee := mapping.ToModelEmployee(employee)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	employeeQuery := `
		UPDATE employees SET
			company_id = $2,
			department_id = $3,
			name = $4,
			email = $5,
			mobile = $6,
			address = $7,
			designation = $8,
			status = $9,
			hired_on = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE employee_id = $1;
	`
	tag, err := tx.Exec(ctx, employeeQuery,
		modelEmployee.EmployeeID,
		modelEmployee.CompanyID,
		modelEmployee.DepartmentID,
		modelEmployee.Name,
		modelEmployee.Email,
		modelEmployee.Mobile,
		modelEmployee.Address,
		modelEmployee.Designation,
		modelEmployee.Status,
		modelEmployee.HiredOn,
		modelEmployee.LastUpdatedAt,
		modelEmployee.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to update employee")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if user != nil {
		modelUser := mapping.ToModelUser(*user)
		userQuery := `
			UPDATE users SET
				email = $2,
				password_hash = $3,
				role = $4,
				is_staff = $5,
				last_updated_at = $6,
				last_updated_by = $7
			WHERE user_id = $1;
		`
		_, err = tx.Exec(ctx, userQuery,
			modelUser.UserID,
			modelUser.Email,
			modelUser.PasswordHash,
			modelUser.Role,
			modelUser.IsStaff,
			modelUser.LastUpdatedAt,
			modelUser.LastUpdatedBy,
		)
		if err != nil {
			return translatePgError(err, "failed to update paired user")
		}
	}

	if err := refreshCompanyCounters(ctx, tx, employee.CompanyID); err != nil {
		return err
	}
	if err := refreshDepartmentCounters(ctx, tx, employee.DepartmentID); err != nil {
		return err
	}
	if previousCompanyID != "" && previousCompanyID != employee.CompanyID {
		if err := refreshCompanyCounters(ctx, tx, previousCompanyID); err != nil {
			return err
		}
	}
	if previousDepartmentID != "" && previousDepartmentID != employee.DepartmentID {
		if err := refreshDepartmentCounters(ctx, tx, previousDepartmentID); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteEmployeeWithUser removes the paired user, which cascades to the
// employee row, then refreshes the affected counters, in one transaction.
func (r *PgxEmployeeRepository) DeleteEmployeeWithUser(ctx context.Context, employee domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, employee.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s of employee %s: %w", employee.UserID, employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := refreshCompanyCounters(ctx, tx, employee.CompanyID); err != nil {
		return err
	}
	if err := refreshDepartmentCounters(ctx, tx, employee.DepartmentID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
