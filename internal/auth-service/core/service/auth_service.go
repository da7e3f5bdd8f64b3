package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetops/internal/auth-service/core/domain/dto"
	"fleetops/internal/auth-service/core/domain/models"
	"fleetops/internal/auth-service/core/myerrors"
	"fleetops/internal/auth-service/core/ports"
	"fleetops/internal/config"
	"fleetops/internal/mylogger"

	"github.com/golang-jwt/jwt"
)

const TokenTTL = time.Hour * 24 * 7

type AuthService struct {
	cfg      *config.Config
	authRepo ports.IAuthRepo
	mylog    mylogger.Logger
}

func NewAuthService(cfg *config.Config, authRepo ports.IAuthRepo, mylog mylogger.Logger) ports.IAuthService {
	return &AuthService{
		cfg:      cfg,
		authRepo: authRepo,
		mylog:    mylog,
	}
}

// ======================= Register =======================
func (as *AuthService) Register(ctx context.Context, regReq dto.UserRegistrationRequest) (string, string, error) {
	mylog := as.mylog.Action("Register")

	if err := validateRegistration(regReq.Username, regReq.Email, regReq.Password, regReq.Role); err != nil {
		return "", "", err
	}

	hashedPassword, err := hashPassword(regReq.Password)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:     regReq.Username,
		Email:        regReq.Email,
		PasswordHash: hashedPassword,
		Role:         regReq.Role,
	}
	// add user to db
	id, err := as.authRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, myerrors.ErrEmailRegistered) {
			mylog.Warn("Failed to register, email already registered")
			return "", "", err
		}
		mylog.Error("Failed to save user in db", err)
		return "", "", fmt.Errorf("cannot save user in db: %w", err)
	}

	accessTokenString, err := as.signToken(id, regReq.Email, regReq.Role)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return "", "", err
	}

	mylog.Info("User registered successfully")
	return id, accessTokenString, nil
}

func (as *AuthService) Login(ctx context.Context, authReq dto.UserAuthRequest) (string, error) {
	mylog := as.mylog.Action("Login")

	if err := validateLogin(authReq.Email, authReq.Password); err != nil {
		return "", err
	}

	user, err := as.authRepo.GetByEmail(ctx, authReq.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrUnknownEmail) {
			mylog.Warn("Failed to login, unknown email")
			return "", err
		}
		mylog.Error("Failed to fetch user from db", err)
		return "", fmt.Errorf("cannot fetch user from db: %w", err)
	}

	// Compare password hashes
	if !checkPassword(user.PasswordHash, authReq.Password) {
		mylog.Debug("Failed to login, unknown password")
		return "", myerrors.ErrPasswordUnknown
	}

	accessTokenString, err := as.signToken(user.UserId, authReq.Email, user.Role)
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return "", err
	}

	mylog.Info("User login successfully")
	return accessTokenString, nil
}

func (as *AuthService) signToken(userId, email, role string) (string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})
	return accessToken.SignedString([]byte(as.cfg.App.JwtSecret))
}
