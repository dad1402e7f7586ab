package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		CompanyRepo:    newPgxCompanyRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
