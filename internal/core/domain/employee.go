package domain

import (
	"fmt"
	"time"

	"github.com/workforceapp/wfm_backend/internal/apperrors"
)

// HiringStatus is the hiring-workflow state of an employee.
type HiringStatus string

const (
	StatusApplicationReceived HiringStatus = "Application Received"
	StatusInterviewScheduled  HiringStatus = "Interview Scheduled"
	StatusHired               HiringStatus = "Hired"
	StatusNotAccepted         HiringStatus = "Not Accepted"
)

// IsValid reports whether the status is one of the known workflow states.
func (s HiringStatus) IsValid() bool {
	switch s {
	case StatusApplicationReceived, StatusInterviewScheduled, StatusHired, StatusNotAccepted:
		return true
	}
	return false
}

// transition describes one edge of the hiring workflow: which source states
// it accepts, its target, and the side effect applied on the employee.
type transition struct {
	sources []HiringStatus // nil means any source state
	target  HiringStatus
	applyFn func(e *Employee, today time.Time)
}

// transitionTable is the full set of legal status changes. Any status change
// not present here is rejected; there is no other path to mutate status.
var transitionTable = []transition{
	{
		sources: []HiringStatus{StatusApplicationReceived},
		target:  StatusInterviewScheduled,
	},
	{
		sources: []HiringStatus{StatusInterviewScheduled},
		target:  StatusHired,
		applyFn: func(e *Employee, today time.Time) {
			d := dateOnly(today)
			e.HiredOn = &d
		},
	},
	{
		sources: nil, // reject is allowed from any state
		target:  StatusNotAccepted,
		applyFn: func(e *Employee, _ time.Time) {
			e.HiredOn = nil
		},
	},
}

// Employee is a hire-workflow record paired one-to-one with a User.
type Employee struct {
	EmployeeID   string       `json:"employeeID"`   // Primary Key (UUID)
	CompanyID    string       `json:"companyID"`    // FK -> companies
	DepartmentID string       `json:"departmentID"` // FK -> departments
	UserID       string       `json:"userID"`       // FK -> users, one-to-one
	Name         string       `json:"name"`
	Email        string       `json:"email"` // Unique, distinct from the user's login email
	Mobile       string       `json:"mobile"`
	Address      string       `json:"address"`
	Designation  string       `json:"designation"`
	Status       HiringStatus `json:"status"`
	HiredOn      *time.Time   `json:"hiredOn,omitempty"`
	AuditFields
}

// Transition moves the employee to the requested status, applying the side
// effect of the matching table entry. It returns ErrInvalidTransition when no
// table entry covers the change; the employee is left untouched in that case.
func (e *Employee) Transition(target HiringStatus, today time.Time) error {
	for _, t := range transitionTable {
		if t.target != target {
			continue
		}
		if t.sources != nil && !containsStatus(t.sources, e.Status) {
			continue
		}
		e.Status = target
		if t.applyFn != nil {
			t.applyFn(e, today)
		}
		return nil
	}
	return fmt.Errorf("cannot change status from %q to %q: %w", e.Status, target, apperrors.ErrInvalidTransition)
}

// NormalizeHiredOn enforces the save-time invariant: hired_on is meaningful
// only while status is Hired. Runs on every persist, not only on transitions.
func (e *Employee) NormalizeHiredOn() {
	if e.Status != StatusHired {
		e.HiredOn = nil
	}
}

// DaysEmployed returns the number of whole days since hired_on when the
// employee is hired, and false otherwise. It is recomputed on every read.
func (e *Employee) DaysEmployed(today time.Time) (int, bool) {
	if e.Status != StatusHired || e.HiredOn == nil {
		return 0, false
	}
	days := int(dateOnly(today).Sub(dateOnly(*e.HiredOn)).Hours() / 24)
	return days, true
}

func containsStatus(set []HiringStatus, s HiringStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
