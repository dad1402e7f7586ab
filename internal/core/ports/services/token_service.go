package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// TokenSvcFacade defines token issuance and refresh token validation.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a short-lived JWT carrying the user's role.
	GenerateAccessToken(ctx context.Context, user domain.User) (string, error)

	// GenerateRefreshToken issues an opaque refresh token carrying the user
	// ID and persists its hash for the user, rotating any previous token.
	GenerateRefreshToken(ctx context.Context, userID string) (string, error)

	// ValidateRefreshToken resolves the user from a presented refresh token
	// and checks it against the stored hash and expiry.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
