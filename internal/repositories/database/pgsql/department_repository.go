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

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(db DBPool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepositoryFacade
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

const departmentColumns = `department_id, company_id, name, num_employees, created_at, created_by, last_updated_at, last_updated_by`

func scanDepartmentRow(row pgx.Row) (*models.Department, error) {
	var m models.Department
	err := row.Scan(
		&m.DepartmentID,
		&m.CompanyID,
		&m.Name,
		&m.NumEmployees,
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

func collectDepartments(rows pgx.Rows) ([]domain.Department, error) {
	modelDepartments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		m, scanErr := scanDepartmentRow(row)
		if scanErr != nil {
			return models.Department{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}
	return mapping.ToDomainDepartmentSlice(modelDepartments), nil
}

// SaveDepartment inserts the department and refreshes the owning company's
// counters in one transaction.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	modelDepartment := mapping.ToModelDepartment(department)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO departments (department_id, company_id, name, num_employees, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, 0, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		modelDepartment.DepartmentID,
		modelDepartment.CompanyID,
		modelDepartment.Name,
		modelDepartment.CreatedAt,
		modelDepartment.CreatedBy,
		modelDepartment.LastUpdatedAt,
		modelDepartment.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save department")
	}

	if err := refreshCompanyCounters(ctx, tx, department.CompanyID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`
	modelDepartment, err := scanDepartmentRow(r.Pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %s: %w", departmentID, err)
	}
	domainDepartment := mapping.ToDomainDepartment(*modelDepartment)
	return &domainDepartment, nil
}

func (r *PgxDepartmentRepository) FindDepartments(ctx context.Context, limit int, offset int) ([]domain.Department, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + departmentColumns + ` FROM departments ORDER BY name ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()
	return collectDepartments(rows)
}

func (r *PgxDepartmentRepository) FindDepartmentsByCompanyID(ctx context.Context, companyID string) ([]domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE company_id = $1 ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments of company %s: %w", companyID, err)
	}
	defer rows.Close()
	return collectDepartments(rows)
}

// UpdateDepartment updates the department and refreshes the counters of the
// owning company, and of the previous company when the department moved.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department, previousCompanyID string) error {
	modelDepartment := mapping.ToModelDepartment(department)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE departments SET
			company_id = $2,
			name = $3,
			last_updated_at = $4,
			last_updated_by = $5
		WHERE department_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		modelDepartment.DepartmentID,
		modelDepartment.CompanyID,
		modelDepartment.Name,
		modelDepartment.LastUpdatedAt,
		modelDepartment.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to update department")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := refreshCompanyCounters(ctx, tx, department.CompanyID); err != nil {
		return err
	}
	if previousCompanyID != "" && previousCompanyID != department.CompanyID {
		if err := refreshCompanyCounters(ctx, tx, previousCompanyID); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteDepartment removes the department, its employees and their paired
// users, then refreshes the owning company's counters, in one transaction.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string, companyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteUsersQuery := `
		DELETE FROM users
		WHERE user_id IN (SELECT user_id FROM employees WHERE department_id = $1);
	`
	if _, err := tx.Exec(ctx, deleteUsersQuery, departmentID); err != nil {
		return fmt.Errorf("failed to delete users of department %s: %w", departmentID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := refreshCompanyCounters(ctx, tx, companyID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
