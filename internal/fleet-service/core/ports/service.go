package ports

import (
	"context"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
)

type ITripsService interface {
	CreateTrip(ctx context.Context, actor string, req dto.TripCreateRequestDto) (model.Trip, error)
	GetTrip(ctx context.Context, tripId string) (dto.TripDetailDto, error)
	ListTrips(ctx context.Context, status string) ([]model.Trip, error)
	StartTrip(ctx context.Context, tripId string) (model.Trip, error)
	CompleteTrip(ctx context.Context, tripId string, endTime time.Time) (dto.TripDetailDto, error)
	DeleteTrip(ctx context.Context, tripId string) error
}

type ITrucksService interface {
	CreateTruck(ctx context.Context, req dto.TruckRequestDto) (model.Truck, error)
	GetTruck(ctx context.Context, truckId string) (model.Truck, error)
	ListTrucks(ctx context.Context) ([]model.Truck, error)
	UpdateTruck(ctx context.Context, truckId string, req dto.TruckRequestDto) (model.Truck, error)
	DeleteTruck(ctx context.Context, truckId string) error
}

type IExpensesService interface {
	AddExpense(ctx context.Context, actor, tripId string, req dto.ExpenseRequestDto) (model.Expense, error)
	ListForTrip(ctx context.Context, tripId string) ([]model.Expense, error)
	DeleteExpense(ctx context.Context, expenseId string) error
	TotalForTrip(ctx context.Context, tripId string) (float64, error)
}

type IReportsService interface {
	Summary(ctx context.Context, window string) (dto.WindowSummaryDto, error)
	MonthlyBreakdown(ctx context.Context, year int) (dto.MonthlyReportDto, error)
	TruckReport(ctx context.Context) (dto.TruckReportDto, error)
}
