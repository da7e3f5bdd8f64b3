package ports

import (
	"context"

	"fleetops/internal/auth-service/core/domain/dto"
	"fleetops/internal/auth-service/core/domain/models"
)

type IAuthService interface {
	// user_id, signed access token and error
	Register(ctx context.Context, regReq dto.UserRegistrationRequest) (string, string, error)
	Login(ctx context.Context, authReq dto.UserAuthRequest) (string, error)
}

type IUsersService interface {
	GetUser(ctx context.Context, userId string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userId string, req dto.UserUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, userId string) error
}
