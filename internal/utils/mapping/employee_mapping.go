package mapping

import (
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.EmployeeID,
		CompanyID:    d.CompanyID,
		DepartmentID: d.DepartmentID,
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		Mobile:       d.Mobile,
		Address:      d.Address,
		Designation:  d.Designation,
		Status:       string(d.Status),
		HiredOn:      d.HiredOn,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		CompanyID:    m.CompanyID,
		DepartmentID: m.DepartmentID,
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		Mobile:       m.Mobile,
		Address:      m.Address,
		Designation:  m.Designation,
		Status:       domain.HiringStatus(m.Status),
		HiredOn:      m.HiredOn,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
