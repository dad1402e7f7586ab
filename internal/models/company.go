package models

// Company is the persistence model for the companies table.
type Company struct {
	CompanyID      string `db:"company_id"`
	Name           string `db:"name"`
	NumDepartments int    `db:"num_departments"`
	NumEmployees   int    `db:"num_employees"`
	AuditFields
}

// Department is the persistence model for the departments table.
type Department struct {
	DepartmentID string `db:"department_id"`
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	NumEmployees int    `db:"num_employees"`
	AuditFields
}
