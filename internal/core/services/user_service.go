package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
	"github.com/workforceapp/wfm_backend/internal/dto"
	"github.com/workforceapp/wfm_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewUserService creates the user application service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, employeeRepo: employeeRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// buildUser turns a create request into a domain user with a hashed
// password. Shared with the employee service, which creates the paired user
// as part of its own transactional unit.
func buildUser(req dto.CreateUserRequest, creatorUserID string, now time.Time) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsStaff:      role.IsManagerial(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	return &user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	user, err := buildUser(req, creatorUserID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "a user with this email already exists")
		}
		s.LogError(ctx, err, "failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "user created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// mergeUserUpdate applies a partial update onto an existing user. Shared
// with the employee service for paired user updates.
func mergeUserUpdate(user *domain.User, req dto.UpdateUserRequest, updaterUserID string, now time.Time) error {
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", *req.Role))
		}
		user.Role = role
		user.IsStaff = role.IsManagerial()
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.LastUpdatedAt = now
	user.LastUpdatedBy = updaterUserID
	return nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := mergeUserUpdate(user, req, updaterUserID, time.Now()); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("email", "a user with this email already exists")
		}
		s.LogError(ctx, err, "failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user account. Accounts paired with an employee go
// through the transactional employee delete so the FK cascade and the
// counter recompute happen in the same unit.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	employee, err := s.employeeRepo.FindEmployeeByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if employee != nil {
		if err := s.employeeRepo.DeleteEmployeeWithUser(ctx, *employee); err != nil {
			return err
		}
		s.LogInfo(ctx, "user deleted", slog.String("user_id", userID), slog.String("employee_id", employee.EmployeeID))
		return nil
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiresAt)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}
