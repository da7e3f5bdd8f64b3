package ports

import (
	"context"

	"fleetops/internal/auth-service/core/domain/models"

	"github.com/jackc/pgx/v5"
)

type IDB interface {
	GetConn() *pgx.Conn
	IsAlive() error
	Close() error
}

type IAuthRepo interface {
	// user_id and error
	Create(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type IUsersRepo interface {
	GetById(ctx context.Context, userId string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, userId string) error
}
