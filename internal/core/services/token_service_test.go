package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/core/services"
	"github.com/workforceapp/wfm_backend/internal/platform/config"
	"github.com/workforceapp/wfm_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	userSvc  portssvc.UserSvcFacade
	service  portssvc.TokenSvcFacade
	cfg      *config.Config
	ctx      context.Context
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.userSvc = services.NewUserService(s.userRepo, new(MockEmployeeRepository))
	s.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "wfm-backend-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	s.service = services.NewTokenService(s.cfg, s.userSvc)
	s.ctx = context.Background()
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_CarriesRoleClaim() {
	user := domain.User{UserID: "user-1", Role: domain.RoleManager}

	token, err := s.service.GenerateAccessToken(s.ctx, user)
	s.Require().NoError(err)

	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	s.Require().NoError(err)
	s.Equal("user-1", claims.Subject)
	s.Equal("Manager", claims.Role)
	s.Equal("wfm-backend-test", claims.Issuer)
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken_PersistsHash() {
	var storedHash string
	var storedExpiry time.Time
	s.userRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
		storedHash = refreshTokenHash
		storedExpiry = expiresAt
		return nil
	}

	raw, err := s.service.GenerateRefreshToken(s.ctx, "user-1")
	s.Require().NoError(err)
	s.NotEmpty(raw)
	// the token is self-describing so refresh does not need a user_id
	s.True(strings.HasPrefix(raw, "user-1."))
	s.Equal(utils.HashRefreshToken(raw), storedHash)
	s.True(storedExpiry.After(time.Now()))
}

func (s *TokenServiceTestSuite) TestValidateRefreshToken() {
	raw := "user-1.some-opaque-refresh-token"
	hash := utils.HashRefreshToken(raw)
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	user := &domain.User{UserID: "user-1", Role: domain.RoleEmployee, RefreshTokenHash: hash, RefreshTokenExpiryTime: &future}
	s.userRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		if userID != "user-1" {
			return nil, apperrors.ErrNotFound
		}
		return user, nil
	}

	got, err := s.service.ValidateRefreshToken(s.ctx, raw)
	s.Require().NoError(err)
	s.Equal("user-1", got.UserID)

	// wrong token for the same user
	_, err = s.service.ValidateRefreshToken(s.ctx, "user-1.forged")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// token without an embedded user id
	_, err = s.service.ValidateRefreshToken(s.ctx, "malformed")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// token for an unknown user
	_, err = s.service.ValidateRefreshToken(s.ctx, "ghost.whatever")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	// expired token
	user.RefreshTokenExpiryTime = &past
	_, err = s.service.ValidateRefreshToken(s.ctx, raw)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
