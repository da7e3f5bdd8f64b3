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

type TripsRepo struct {
	db *DB
}

func NewTripsRepo(db *DB) ports.ITripsRepo {
	return &TripsRepo{
		db: db,
	}
}

func (tr *TripsRepo) Create(ctx context.Context, m model.Trip) (string, error) {
	q := `INSERT INTO trips(
			truck_id,
			product,
			origin,
			destination,
			transport,
			status,
			start_time,
			end_time,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING trip_id`

	conn := tr.db.pool
	row := conn.QueryRow(ctx, q,
		m.TruckId,
		m.Product,
		m.Route.Origin,
		m.Route.Destination,
		m.Transport,
		m.Status,
		m.StartTime,
		m.EndTime,
		m.CreatedBy,
	)

	tripId := ""
	if err := row.Scan(&tripId); err != nil {
		return "", err
	}
	return tripId, nil
}

func (tr *TripsRepo) GetById(ctx context.Context, tripId string) (model.Trip, error) {
	q := `
	SELECT
		t.trip_id,
		t.truck_id,
		t.product,
		t.origin,
		t.destination,
		t.transport,
		t.status,
		t.start_time,
		t.end_time,
		t.created_by,
		t.created_at,
		t.updated_at
	FROM
		trips t
	WHERE
		t.trip_id = $1`

	var m model.Trip
	row := tr.db.pool.QueryRow(ctx, q, tripId)
	if err := row.Scan(
		&m.TripId,
		&m.TruckId,
		&m.Product,
		&m.Route.Origin,
		&m.Route.Destination,
		&m.Transport,
		&m.Status,
		&m.StartTime,
		&m.EndTime,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Trip{}, fmt.Errorf("trip %s: %w", tripId, myerrors.ErrNotFound)
		}
		return model.Trip{}, err
	}
	return m, nil
}

func (tr *TripsRepo) List(ctx context.Context, status string) ([]model.Trip, error) {
	q := `
	SELECT
		t.trip_id,
		t.truck_id,
		t.product,
		t.origin,
		t.destination,
		t.transport,
		t.status,
		t.start_time,
		t.end_time,
		t.created_by,
		t.created_at,
		t.updated_at
	FROM
		trips t
	WHERE
		($1 = '' OR t.status = $1)
	ORDER BY
		t.created_at DESC`

	rows, err := tr.db.pool.Query(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		var m model.Trip
		if err := rows.Scan(
			&m.TripId,
			&m.TruckId,
			&m.Product,
			&m.Route.Origin,
			&m.Route.Destination,
			&m.Transport,
			&m.Status,
			&m.StartTime,
			&m.EndTime,
			&m.CreatedBy,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, m)
	}
	return trips, rows.Err()
}

// ApplyTransition writes the trip's new status/end_time and the truck's new
// status in one transaction so a crash can never leave a started trip with an
// available truck.
func (tr *TripsRepo) ApplyTransition(ctx context.Context, m model.Trip, truckStatus string) error {
	conn := tr.db.pool
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	q1 := `
	UPDATE trips
	SET
		status = $2,
		end_time = $3,
		updated_at = NOW()
	WHERE trip_id = $1`
	ct, err := tx.Exec(ctx, q1, m.TripId, m.Status, m.EndTime)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", m.TripId, myerrors.ErrNotFound)
	}

	q2 := `
	UPDATE trucks
	SET
		status = $2,
		updated_at = NOW()
	WHERE truck_id = $1`
	ct, err = tx.Exec(ctx, q2, m.TruckId, truckStatus)
	if err != nil {
		return fmt.Errorf("failed to update truck: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("truck %s: %w", m.TruckId, myerrors.ErrNotFound)
	}

	return tx.Commit(ctx)
}

// Delete removes the trip together with its expense ledger, expenses never
// outlive their owning trip.
func (tr *TripsRepo) Delete(ctx context.Context, tripId string) error {
	conn := tr.db.pool
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Safe rollback if not committed

	if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE trip_id = $1`, tripId); err != nil {
		return fmt.Errorf("failed to delete trip expenses: %w", err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1`, tripId)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", tripId, myerrors.ErrNotFound)
	}

	return tx.Commit(ctx)
}
