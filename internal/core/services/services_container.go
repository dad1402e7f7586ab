package services

import (
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.EmployeeRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Department = NewDepartmentService(repos.DepartmentRepo, repos.CompanyRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo, repos.CompanyRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
