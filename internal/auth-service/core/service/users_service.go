package service

import (
	"context"
	"fmt"

	"fleetops/internal/auth-service/core/domain/dto"
	"fleetops/internal/auth-service/core/domain/models"
	"fleetops/internal/auth-service/core/myerrors"
	"fleetops/internal/auth-service/core/ports"
	"fleetops/internal/mylogger"
)

type UsersService struct {
	usersRepo ports.IUsersRepo
	mylog     mylogger.Logger
}

func NewUsersService(usersRepo ports.IUsersRepo, mylog mylogger.Logger) ports.IUsersService {
	return &UsersService{
		usersRepo: usersRepo,
		mylog:     mylog,
	}
}

func (us *UsersService) GetUser(ctx context.Context, userId string) (models.User, error) {
	return us.usersRepo.GetById(ctx, userId)
}

func (us *UsersService) ListUsers(ctx context.Context) ([]models.User, error) {
	return us.usersRepo.List(ctx)
}

func (us *UsersService) UpdateUser(ctx context.Context, userId string, req dto.UserUpdateRequest) (models.User, error) {
	mylog := us.mylog.Action("UpdateUser")

	user, err := us.usersRepo.GetById(ctx, userId)
	if err != nil {
		return models.User{}, err
	}

	if req.Username != nil {
		if err := validateName(*req.Username); err != nil {
			return models.User{}, fmt.Errorf("invalid name: %w", err)
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return models.User{}, fmt.Errorf("invalid email: %w", err)
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !AllowedRoles[*req.Role] {
			return models.User{}, fmt.Errorf("role %q: %w", *req.Role, myerrors.ErrUnknownRole)
		}
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = req.Status
	}

	if err := us.usersRepo.Update(ctx, user); err != nil {
		mylog.Error("Failed to update user", err)
		return models.User{}, err
	}

	return user, nil
}

func (us *UsersService) DeleteUser(ctx context.Context, userId string) error {
	return us.usersRepo.Delete(ctx, userId)
}
