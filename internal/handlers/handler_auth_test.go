package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/dto"
	"github.com/workforceapp/wfm_backend/internal/handlers"
	"github.com/workforceapp/wfm_backend/internal/platform/config"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	userService     *MockUserService
	employeeService *MockEmployeeService
	tokenService    *MockTokenService
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.userService = new(MockUserService)
	s.employeeService = new(MockEmployeeService)
	s.tokenService = new(MockTokenService)

	cfg := &config.Config{
		JWTSecret:               testJWTSecret,
		IsProduction:            true,
		LoginRateLimitPerMinute: 100,
	}
	services := &portssvc.ServiceContainer{
		User:       s.userService,
		Company:    new(MockCompanyService),
		Department: new(MockDepartmentService),
		Employee:   s.employeeService,
		Reporting:  new(MockReportingService),
		Token:      s.tokenService,
	}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, services)
}

func (s *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestLogin_ReturnsTokenPairWithRoleAndEmployeeID() {
	userID := uuid.NewString()
	employeeID := uuid.NewString()
	user := &domain.User{UserID: userID, Email: "jane@acme.test", Role: domain.RoleEmployee}

	s.userService.On("AuthenticateUser", mock.Anything, "jane@acme.test", "password123").Return(user, nil)
	s.tokenService.On("GenerateAccessToken", mock.Anything, *user).Return("access-token", nil)
	s.tokenService.On("GenerateRefreshToken", mock.Anything, userID).Return("refresh-token", nil)
	s.employeeService.On("GetEmployeeByUserID", mock.Anything, userID).
		Return(&domain.Employee{EmployeeID: employeeID, UserID: userID}, nil)

	w := s.postJSON("/api/v1/jwt/create", gin.H{"email": "jane@acme.test", "password": "password123"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.TokenPairResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access-token", resp.Access)
	s.Equal("refresh-token", resp.Refresh)
	s.Equal("Employee", resp.Role)
	s.Require().NotNil(resp.EmployeeID)
	s.Equal(employeeID, *resp.EmployeeID)
}

func (s *AuthHandlerTestSuite) TestLogin_NoPairedEmployeeYieldsNullEmployeeID() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Email: "admin@acme.test", Role: domain.RoleAdmin}

	s.userService.On("AuthenticateUser", mock.Anything, "admin@acme.test", "password123").Return(user, nil)
	s.tokenService.On("GenerateAccessToken", mock.Anything, *user).Return("access-token", nil)
	s.tokenService.On("GenerateRefreshToken", mock.Anything, userID).Return("refresh-token", nil)
	s.employeeService.On("GetEmployeeByUserID", mock.Anything, userID).Return(nil, apperrors.ErrNotFound)

	w := s.postJSON("/api/v1/jwt/create", gin.H{"email": "admin@acme.test", "password": "password123"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.TokenPairResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Admin", resp.Role)
	s.Nil(resp.EmployeeID)
}

func (s *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	s.userService.On("AuthenticateUser", mock.Anything, "jane@acme.test", "wrong").
		Return(nil, apperrors.ErrUnauthorized)

	w := s.postJSON("/api/v1/jwt/create", gin.H{"email": "jane@acme.test", "password": "wrong"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.tokenService.AssertNotCalled(s.T(), "GenerateAccessToken")
}

func (s *AuthHandlerTestSuite) TestRefresh_RotatesPair() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Role: domain.RoleManager}

	// the refresh token alone identifies the user, no user_id in the payload
	s.tokenService.On("ValidateRefreshToken", mock.Anything, "old-refresh").Return(user, nil)
	s.tokenService.On("GenerateAccessToken", mock.Anything, *user).Return("new-access", nil)
	s.tokenService.On("GenerateRefreshToken", mock.Anything, userID).Return("new-refresh", nil)

	w := s.postJSON("/api/v1/jwt/refresh", gin.H{"refresh": "old-refresh"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AccessTokenResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("new-access", resp.Access)
	s.Equal("new-refresh", resp.Refresh)
}

func (s *AuthHandlerTestSuite) TestRefresh_RejectedToken() {
	s.tokenService.On("ValidateRefreshToken", mock.Anything, "stolen").
		Return(nil, apperrors.ErrUnauthorized)

	w := s.postJSON("/api/v1/jwt/refresh", gin.H{"refresh": "stolen"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.tokenService.AssertNotCalled(s.T(), "GenerateAccessToken")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
