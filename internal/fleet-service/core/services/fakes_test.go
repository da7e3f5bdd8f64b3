package services

import (
	"context"
	"fmt"

	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
	"fleetops/internal/mylogger"
)

// In-memory repo fakes behind the ports interfaces, enough to exercise the
// services without a database.

type fakeTrucksRepo struct {
	trucks map[string]model.Truck
}

func newFakeTrucksRepo() *fakeTrucksRepo {
	return &fakeTrucksRepo{trucks: map[string]model.Truck{}}
}

func (f *fakeTrucksRepo) Create(ctx context.Context, truck model.Truck) (string, error) {
	id := fmt.Sprintf("truck_%d", len(f.trucks)+1)
	truck.TruckId = id
	f.trucks[id] = truck
	return id, nil
}

func (f *fakeTrucksRepo) GetById(ctx context.Context, truckId string) (model.Truck, error) {
	truck, ok := f.trucks[truckId]
	if !ok {
		return model.Truck{}, myerrors.ErrNotFound
	}
	return truck, nil
}

func (f *fakeTrucksRepo) List(ctx context.Context) ([]model.Truck, error) {
	out := make([]model.Truck, 0, len(f.trucks))
	for _, t := range f.trucks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTrucksRepo) Update(ctx context.Context, truck model.Truck) error {
	if _, ok := f.trucks[truck.TruckId]; !ok {
		return myerrors.ErrNotFound
	}
	f.trucks[truck.TruckId] = truck
	return nil
}

func (f *fakeTrucksRepo) Delete(ctx context.Context, truckId string) error {
	if _, ok := f.trucks[truckId]; !ok {
		return myerrors.ErrNotFound
	}
	delete(f.trucks, truckId)
	return nil
}

type fakeTripsRepo struct {
	trips  map[string]model.Trip
	trucks *fakeTrucksRepo
	seq    int
}

func newFakeTripsRepo(trucks *fakeTrucksRepo) *fakeTripsRepo {
	return &fakeTripsRepo{trips: map[string]model.Trip{}, trucks: trucks}
}

func (f *fakeTripsRepo) Create(ctx context.Context, trip model.Trip) (string, error) {
	f.seq++
	id := fmt.Sprintf("trip_%d", f.seq)
	trip.TripId = id
	f.trips[id] = trip
	return id, nil
}

func (f *fakeTripsRepo) GetById(ctx context.Context, tripId string) (model.Trip, error) {
	trip, ok := f.trips[tripId]
	if !ok {
		return model.Trip{}, myerrors.ErrNotFound
	}
	return trip, nil
}

func (f *fakeTripsRepo) List(ctx context.Context, status string) ([]model.Trip, error) {
	out := []model.Trip{}
	for _, t := range f.trips {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripsRepo) ApplyTransition(ctx context.Context, trip model.Trip, truckStatus string) error {
	if _, ok := f.trips[trip.TripId]; !ok {
		return myerrors.ErrNotFound
	}
	f.trips[trip.TripId] = trip
	truck, ok := f.trucks.trucks[trip.TruckId]
	if !ok {
		return myerrors.ErrNotFound
	}
	truck.Status = truckStatus
	f.trucks.trucks[trip.TruckId] = truck
	return nil
}

func (f *fakeTripsRepo) Delete(ctx context.Context, tripId string) error {
	if _, ok := f.trips[tripId]; !ok {
		return myerrors.ErrNotFound
	}
	delete(f.trips, tripId)
	return nil
}

type fakeExpensesRepo struct {
	expenses map[string]model.Expense
	seq      int
	// failFor simulates fetch failures per trip id
	failFor map[string]bool
}

func newFakeExpensesRepo() *fakeExpensesRepo {
	return &fakeExpensesRepo{expenses: map[string]model.Expense{}, failFor: map[string]bool{}}
}

func (f *fakeExpensesRepo) Create(ctx context.Context, expense model.Expense) (string, error) {
	f.seq++
	id := fmt.Sprintf("exp_%d", f.seq)
	expense.ExpenseId = id
	f.expenses[id] = expense
	return id, nil
}

func (f *fakeExpensesRepo) ListByTrip(ctx context.Context, tripId string) ([]model.Expense, error) {
	if f.failFor[tripId] {
		return nil, fmt.Errorf("connection reset")
	}
	out := []model.Expense{}
	for _, e := range f.expenses {
		if e.TripId == tripId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, expenseId string) error {
	if _, ok := f.expenses[expenseId]; !ok {
		return myerrors.ErrNotFound
	}
	delete(f.expenses, expenseId)
	return nil
}

func testLogger() mylogger.Logger {
	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		panic(err)
	}
	return log
}
