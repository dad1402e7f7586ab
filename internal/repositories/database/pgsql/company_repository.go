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

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(db DBPool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, num_departments, num_employees, created_at, created_by, last_updated_at, last_updated_by`

func scanCompanyRow(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Name,
		&m.NumDepartments,
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

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	modelCompany := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (company_id, name, num_departments, num_employees, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 0, 0, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.CreatedAt,
		modelCompany.CreatedBy,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save company")
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	modelCompany, err := scanCompanyRow(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}
	domainCompany := mapping.ToDomainCompany(*modelCompany)
	return &domainCompany, nil
}

func (r *PgxCompanyRepository) FindCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		m, scanErr := scanCompanyRow(row)
		if scanErr != nil {
			return models.Company{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	domainCompanies := make([]domain.Company, len(modelCompanies))
	for i, m := range modelCompanies {
		domainCompanies[i] = mapping.ToDomainCompany(m)
	}
	return domainCompanies, nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	modelCompany := mapping.ToModelCompany(company)
	query := `
		UPDATE companies SET
			name = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Name,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to update company")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCompany removes the company, its departments and employees, and the
// user accounts paired with those employees, in one transaction.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteUsersQuery := `
		DELETE FROM users
		WHERE user_id IN (SELECT user_id FROM employees WHERE company_id = $1);
	`
	if _, err := tx.Exec(ctx, deleteUsersQuery, companyID); err != nil {
		return fmt.Errorf("failed to delete users of company %s: %w", companyID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
