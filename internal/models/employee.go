package models

import "time"

// Employee is the persistence model for the employees table.
type Employee struct {
	EmployeeID   string     `db:"employee_id"`
	CompanyID    string     `db:"company_id"`
	DepartmentID string     `db:"department_id"`
	UserID       string     `db:"user_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Mobile       string     `db:"mobile"`
	Address      string     `db:"address"`
	Designation  string     `db:"designation"`
	Status       string     `db:"status"`
	HiredOn      *time.Time `db:"hired_on"`
	AuditFields
}
