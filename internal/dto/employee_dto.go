package dto

import (
	"time"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// HiredOnLayout is the wire format for the hired_on date.
const HiredOnLayout = "2006-01-02"

// CreateEmployeeRequest is the payload for onboarding an employee together
// with its paired user account. hired_on may only be supplied when the
// status is Hired.
type CreateEmployeeRequest struct {
	User         CreateUserRequest `json:"user" binding:"required"`
	Name         string            `json:"name" binding:"required,max=255"`
	CompanyID    string            `json:"company" binding:"required,uuid"`
	DepartmentID string            `json:"department" binding:"required,uuid"`
	Email        string            `json:"email" binding:"required,email"`
	Mobile       string            `json:"mobile" binding:"omitempty,max=20"`
	Address      string            `json:"address" binding:"omitempty,max=255"`
	Designation  string            `json:"designation" binding:"omitempty,max=255"`
	Status       string            `json:"status" binding:"omitempty,hiringstatus"`
	HiredOn      *string           `json:"hired_on" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest is the payload for a partial employee update. A
// status value different from the current one is run through the hiring
// lifecycle rules.
type UpdateEmployeeRequest struct {
	User         *UpdateUserRequest `json:"user" binding:"omitempty"`
	Name         *string            `json:"name" binding:"omitempty,max=255"`
	CompanyID    *string            `json:"company" binding:"omitempty,uuid"`
	DepartmentID *string            `json:"department" binding:"omitempty,uuid"`
	Email        *string            `json:"email" binding:"omitempty,email"`
	Mobile       *string            `json:"mobile" binding:"omitempty,max=20"`
	Address      *string            `json:"address" binding:"omitempty,max=255"`
	Designation  *string            `json:"designation" binding:"omitempty,max=255"`
	Status       *string            `json:"status" binding:"omitempty,hiringstatus"`
	HiredOn      *string            `json:"hired_on" binding:"omitempty,datetime=2006-01-02"`
}

// EmployeeResponse is the API representation of an employee. hired_on and
// days_employed are derived server-side and read only.
type EmployeeResponse struct {
	EmployeeID   string  `json:"id"`
	UserID       string  `json:"user"`
	CompanyID    string  `json:"company"`
	DepartmentID string  `json:"department"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Mobile       string  `json:"mobile"`
	Address      string  `json:"address"`
	Designation  string  `json:"designation"`
	Status       string  `json:"status"`
	HiredOn      *string `json:"hired_on"`
	DaysEmployed *int    `json:"days_employed"`
}

// ToEmployeeResponse maps a domain employee to its API representation,
// deriving days_employed against the supplied reference time.
func ToEmployeeResponse(employee domain.Employee, now time.Time) EmployeeResponse {
	response := EmployeeResponse{
		EmployeeID:   employee.EmployeeID,
		UserID:       employee.UserID,
		CompanyID:    employee.CompanyID,
		DepartmentID: employee.DepartmentID,
		Name:         employee.Name,
		Email:        employee.Email,
		Mobile:       employee.Mobile,
		Address:      employee.Address,
		Designation:  employee.Designation,
		Status:       string(employee.Status),
	}
	if employee.HiredOn != nil {
		hiredOn := employee.HiredOn.Format(HiredOnLayout)
		response.HiredOn = &hiredOn
	}
	if days, ok := employee.DaysEmployed(now); ok {
		response.DaysEmployed = &days
	}
	return response
}

// ToEmployeeResponses maps a slice of domain employees to API representations.
func ToEmployeeResponses(employees []domain.Employee, now time.Time) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, ToEmployeeResponse(employee, now))
	}
	return responses
}
