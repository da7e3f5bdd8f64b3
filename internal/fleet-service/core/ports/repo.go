package ports

import (
	"context"

	"fleetops/internal/fleet-service/core/domain/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IDB interface {
	GetPool() *pgxpool.Pool
	IsAlive() error
	Close() error
}

type ITrucksRepo interface {
	Create(ctx context.Context, truck model.Truck) (string, error)
	GetById(ctx context.Context, truckId string) (model.Truck, error)
	List(ctx context.Context) ([]model.Truck, error)
	Update(ctx context.Context, truck model.Truck) error
	Delete(ctx context.Context, truckId string) error
}

type ITripsRepo interface {
	Create(ctx context.Context, trip model.Trip) (string, error)
	GetById(ctx context.Context, tripId string) (model.Trip, error)
	List(ctx context.Context, status string) ([]model.Trip, error)
	// ApplyTransition persists the trip's new status/end_time and the truck's
	// new status in a single transaction.
	ApplyTransition(ctx context.Context, trip model.Trip, truckStatus string) error
	// Delete removes the trip and its expense ledger in one transaction.
	Delete(ctx context.Context, tripId string) error
}

type IExpensesRepo interface {
	Create(ctx context.Context, expense model.Expense) (string, error)
	ListByTrip(ctx context.Context, tripId string) ([]model.Expense, error)
	Delete(ctx context.Context, expenseId string) error
}
