package dto

// CreateTokenRequest is the payload for the login endpoint.
type CreateTokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the payload for exchanging a refresh token. The
// token itself identifies the user.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPairResponse carries freshly issued tokens plus the convenience
// fields the frontend needs to bootstrap a session. employee_id is null for
// accounts without a paired employee record.
type TokenPairResponse struct {
	Access     string  `json:"access"`
	Refresh    string  `json:"refresh"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id"`
}

// AccessTokenResponse carries a freshly rotated access/refresh pair.
type AccessTokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
