package services

import (
	"context"
	"time"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	"github.com/workforceapp/wfm_backend/internal/dto"
)

// UserSvcFacade defines the application service surface for user accounts.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by its login email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser removes a user and, via cascade, its paired employee.
	DeleteUser(ctx context.Context, userID string) error

	// AuthenticateUser verifies an email/password pair and returns the user.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// UpdateRefreshToken stores the hash of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error

	// ClearRefreshToken invalidates the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}
