package domain

import "time"

// UserRole defines the application-wide role of a login identity.
type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleManager  UserRole = "Manager"
	RoleEmployee UserRole = "Employee"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// IsManagerial reports whether the role passes the Admin/Manager gate.
func (r UserRole) IsManagerial() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents a login identity (principal). Each user has at most one
// associated Employee record; the pairing is owned by the Employee side.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Email        string   `json:"email"`  // Login key, unique
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsStaff      bool     `json:"isStaff"`
	IsSuperuser  bool     `json:"isSuperuser"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
