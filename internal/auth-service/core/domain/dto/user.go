package dto

import "fleetops/internal/auth-service/core/domain/models"

type UserRegistrationRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest carries a partial update, nil fields are left untouched.
type UserUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type UserResponseDto struct {
	Success bool        `json:"success"`
	Data    models.User `json:"data"`
}

type UserListResponseDto struct {
	Data []models.User `json:"data"`
}

type MessageResponseDto struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
