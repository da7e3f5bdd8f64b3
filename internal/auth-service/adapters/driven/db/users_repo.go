package db

import (
	"context"
	"errors"
	"fmt"

	"fleetops/internal/auth-service/core/domain/models"
	"fleetops/internal/auth-service/core/myerrors"
	"fleetops/internal/auth-service/core/ports"

	"github.com/jackc/pgx/v5"
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) ports.IUsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (ur *UsersRepo) GetById(ctx context.Context, userId string) (models.User, error) {
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
			u.user_id = $1
	`

	var u models.User
	err := ur.db.conn.QueryRow(ctx, q, userId).Scan(
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
			return models.User{}, fmt.Errorf("user %s: %w", userId, myerrors.ErrUserNotFound)
		}
		return models.User{}, err
	}

	return u, nil
}

func (ur *UsersRepo) List(ctx context.Context) ([]models.User, error) {
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
		ORDER BY
			u.created_at
	`

	rows, err := ur.db.conn.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.UserId,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.Username,
			&u.Email,
			&u.Status,
			&u.PasswordHash,
			&u.Role,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (ur *UsersRepo) Update(ctx context.Context, user models.User) error {
	q := `
	UPDATE users
	SET
		username = $2,
		email = $3,
		role = $4,
		status = $5,
		updated_at = NOW()
	WHERE user_id = $1`

	ct, err := ur.db.conn.Exec(ctx, q,
		user.UserId,
		user.Username,
		user.Email,
		user.Role,
		user.Status,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.UserId, myerrors.ErrUserNotFound)
	}
	return nil
}

func (ur *UsersRepo) Delete(ctx context.Context, userId string) error {
	ct, err := ur.db.conn.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userId)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userId, myerrors.ErrUserNotFound)
	}
	return nil
}
