package mapping

import (
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		NumDepartments: d.NumDepartments,
		NumEmployees:   d.NumEmployees,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		NumDepartments: m.NumDepartments,
		NumEmployees:   m.NumEmployees,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDepartment converts a domain Department to a model Department
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID: d.DepartmentID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		NumEmployees: d.NumEmployees,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		NumEmployees: m.NumEmployees,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepartmentSlice converts a slice of model Departments to domain Departments
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}
