package dto

import "github.com/workforceapp/wfm_backend/internal/core/domain"

// CreateUserRequest is the payload for registering a user account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=Admin Manager Employee"`
}

// UpdateUserRequest is the payload for a partial user update.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=Admin Manager Employee"`
}

// UserResponse is the API representation of a user account.
type UserResponse struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsStaff bool   `json:"is_staff"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		UserID:  user.UserID,
		Email:   user.Email,
		Role:    string(user.Role),
		IsStaff: user.IsStaff,
	}
}

// ToUserResponses maps a slice of domain users to API representations.
func ToUserResponses(users []domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
