package domain

// Company is the top-level organization owning departments and employees.
// NumDepartments and NumEmployees are derived counters maintained inside the
// same transaction as any structural change; they are a cache over live
// counts, never authoritative.
type Company struct {
	CompanyID      string `json:"companyID"` // Primary Key (UUID)
	Name           string `json:"name"`      // Unique
	NumDepartments int    `json:"numDepartments"`
	NumEmployees   int    `json:"numEmployees"`
	AuditFields
}

// Department belongs to exactly one Company. NumEmployees is a derived
// counter with the same cache semantics as the company counters.
type Department struct {
	DepartmentID string `json:"departmentID"` // Primary Key (UUID)
	CompanyID    string `json:"companyID"`    // FK -> companies, cascade on delete
	Name         string `json:"name"`
	NumEmployees int    `json:"numEmployees"`
	AuditFields
}
