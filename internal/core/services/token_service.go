package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/platform/config"
	"github.com/workforceapp/wfm_backend/internal/utils"
)

// tokenService implements TokenSvcFacade for JWT and refresh token handling.
type tokenService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewTokenService creates the token issuance service.
func NewTokenService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken issues a signed JWT carrying the user's role claim.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// GenerateRefreshToken issues an opaque token and stores its hash, rotating
// any previously issued refresh token for the user. The user ID is embedded
// in the token so the refresh endpoint can resolve the user from the token
// alone.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	random, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	rawRefreshToken := userID + "." + random

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(rawRefreshToken)
	if err := s.userSvc.UpdateRefreshToken(ctx, userID, hash, expiryTime); err != nil {
		return "", fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return rawRefreshToken, nil
}

// ValidateRefreshToken resolves the user from the embedded ID and checks the
// presented token against the stored hash and expiry.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	userID, _, found := strings.Cut(refreshToken, ".")
	if !found || userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
