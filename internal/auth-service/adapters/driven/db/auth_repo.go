package db

import (
	"context"
	"errors"
	"fmt"

	"fleetops/internal/auth-service/core/domain/models"
	"fleetops/internal/auth-service/core/myerrors"
	"fleetops/internal/auth-service/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AuthRepo struct {
	db *DB
}

func NewAuthRepo(db *DB) ports.IAuthRepo {
	return &AuthRepo{
		db: db,
	}
}

func (ar *AuthRepo) Create(ctx context.Context, user models.User) (string, error) {
	tx, err := ar.db.conn.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	q := `INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING user_id`
	id := ""
	row := tx.QueryRow(ctx, q, user.Username, user.Email, user.PasswordHash, user.Role)
	if err = row.Scan(&id); err != nil {
		// Check if it's a Postgres unique violation
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return "", myerrors.ErrEmailRegistered
			}
		}
		return "", fmt.Errorf("failed to insert user: %v", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %v", err)
	}

	return id, nil
}

func (ar *AuthRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	q := `
		SELECT
			u.user_id,
			u.created_at,
			u.updated_at,
			u.username,
			u.email,
			u.status,
			u.password_hash,
			u.role
		FROM
			users u
		WHERE
			u.email = $1
	`

	var u models.User
	err := ar.db.conn.QueryRow(ctx, q, email).Scan(
		&u.UserId,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.Username,
		&u.Email,
		&u.Status,
		&u.PasswordHash,
		&u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, myerrors.ErrUnknownEmail
		}
		return models.User{}, err
	}

	return u, nil
}
