package db

import (
	"context"
	"errors"
	"fmt"

	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/fleet-service/core/ports"

	"github.com/jackc/pgx/v5"
)

type TrucksRepo struct {
	db *DB
}

func NewTrucksRepo(db *DB) ports.ITrucksRepo {
	return &TrucksRepo{
		db: db,
	}
}

func (tr *TrucksRepo) Create(ctx context.Context, m model.Truck) (string, error) {
	q := `INSERT INTO trucks(
			plate_number,
			model,
			capacity,
			status,
			driver_name,
			driver_phone
		) VALUES ($1, $2, $3, $4, $5, $6) RETURNING truck_id`

	row := tr.db.pool.QueryRow(ctx, q,
		m.PlateNumber,
		m.Model,
		m.Capacity,
		m.Status,
		m.DriverName,
		m.DriverPhone,
	)

	truckId := ""
	if err := row.Scan(&truckId); err != nil {
		return "", err
	}
	return truckId, nil
}

func (tr *TrucksRepo) GetById(ctx context.Context, truckId string) (model.Truck, error) {
	q := `
	SELECT
		truck_id,
		plate_number,
		model,
		capacity,
		status,
		driver_name,
		driver_phone,
		created_at,
		updated_at
	FROM
		trucks
	WHERE
		truck_id = $1`

	var m model.Truck
	row := tr.db.pool.QueryRow(ctx, q, truckId)
	if err := row.Scan(
		&m.TruckId,
		&m.PlateNumber,
		&m.Model,
		&m.Capacity,
		&m.Status,
		&m.DriverName,
		&m.DriverPhone,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Truck{}, fmt.Errorf("truck %s: %w", truckId, myerrors.ErrNotFound)
		}
		return model.Truck{}, err
	}
	return m, nil
}

func (tr *TrucksRepo) List(ctx context.Context) ([]model.Truck, error) {
	q := `
	SELECT
		truck_id,
		plate_number,
		model,
		capacity,
		status,
		driver_name,
		driver_phone,
		created_at,
		updated_at
	FROM
		trucks
	ORDER BY
		plate_number`

	rows, err := tr.db.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trucks := []model.Truck{}
	for rows.Next() {
		var m model.Truck
		if err := rows.Scan(
			&m.TruckId,
			&m.PlateNumber,
			&m.Model,
			&m.Capacity,
			&m.Status,
			&m.DriverName,
			&m.DriverPhone,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trucks = append(trucks, m)
	}
	return trucks, rows.Err()
}

func (tr *TrucksRepo) Update(ctx context.Context, m model.Truck) error {
	q := `
	UPDATE trucks
	SET
		plate_number = $2,
		model = $3,
		capacity = $4,
		status = $5,
		driver_name = $6,
		driver_phone = $7,
		updated_at = NOW()
	WHERE truck_id = $1`

	ct, err := tr.db.pool.Exec(ctx, q,
		m.TruckId,
		m.PlateNumber,
		m.Model,
		m.Capacity,
		m.Status,
		m.DriverName,
		m.DriverPhone,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", m.TruckId, myerrors.ErrNotFound)
	}
	return nil
}

func (tr *TrucksRepo) Delete(ctx context.Context, truckId string) error {
	ct, err := tr.db.pool.Exec(ctx, `DELETE FROM trucks WHERE truck_id = $1`, truckId)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", truckId, myerrors.ErrNotFound)
	}
	return nil
}
