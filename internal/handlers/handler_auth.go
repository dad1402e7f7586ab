package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/dto"
	"github.com/workforceapp/wfm_backend/internal/middleware"
	"github.com/workforceapp/wfm_backend/internal/platform/config"
)

// authHandler handles HTTP requests for token issuance and refresh.
type authHandler struct {
	userService     portssvc.UserSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	tokenService    portssvc.TokenSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:     services.User,
		employeeService: services.Employee,
		tokenService:    services.Token,
	}
}

// registerAuthRoutes registers the public token endpoints. Login attempts
// are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	loginLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  cfg.LoginRateLimitPerMinute,
	})

	jwtGroup := r.Group("/api/v1/jwt")
	{
		jwtGroup.POST("/create", middleware.RateLimit(loginLimiter), h.createTokenPair)
		jwtGroup.POST("/refresh", h.refreshTokenPair)
		jwtGroup.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

// createTokenPair godoc
// @Summary Log in with email and password
// @Description Verifies credentials and returns an access/refresh token pair plus the caller's role and employee ID
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.CreateTokenRequest true "Login credentials"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /jwt/create [post]
func (h *authHandler) createTokenPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login attempt failed", slog.String("email", req.Email))
		respondWithError(c, logger, err)
		return
	}

	access, err := h.tokenService.GenerateAccessToken(c.Request.Context(), *user)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	refresh, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user.UserID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	response := dto.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
		Role:    string(user.Role),
	}

	// The frontend bootstraps the session from the login response, so we
	// include the paired employee ID when one exists.
	employee, err := h.employeeService.GetEmployeeByUserID(c.Request.Context(), user.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		respondWithError(c, logger, err)
		return
	}
	if employee != nil {
		response.EmployeeID = &employee.EmployeeID
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, response)
}

// refreshTokenPair godoc
// @Summary Exchange a refresh token
// @Description Validates the presented refresh token and rotates the token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /jwt/refresh [post]
func (h *authHandler) refreshTokenPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		logger.Warn("Refresh token rejected")
		respondWithError(c, logger, err)
		return
	}

	access, err := h.tokenService.GenerateAccessToken(c.Request.Context(), *user)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	refresh, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user.UserID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access, Refresh: refresh})
}

// logout godoc
// @Summary Log out
// @Description Invalidates the caller's stored refresh token
// @Tags auth
// @Produce  json
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /jwt/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("User logged out", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}
