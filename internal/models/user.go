package models

import "time"

// User is the persistence model for the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	IsStaff      bool   `db:"is_staff"`
	IsSuperuser  bool   `db:"is_superuser"`
	AuditFields
	RefreshTokenHash      *string    `db:"refresh_token_hash"`
	RefreshTokenExpiresAt *time.Time `db:"refresh_token_expires_at"`
}
