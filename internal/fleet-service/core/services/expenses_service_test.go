package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetops/internal/fleet-service/core/domain/dto"
	"fleetops/internal/fleet-service/core/domain/model"
	"fleetops/internal/fleet-service/core/myerrors"
)

func newExpensesFixture(t *testing.T, tripStatus string) (*fakeExpensesRepo, *ExpensesService, string) {
	t.Helper()
	trucks := newFakeTrucksRepo()
	trips := newFakeTripsRepo(trucks)
	expenses := newFakeExpensesRepo()

	tripId, err := trips.Create(context.Background(), model.Trip{
		TruckId:   "truck_1",
		Product:   "CEMENT",
		Transport: 5000,
		Status:    tripStatus,
		StartTime: time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed trip: %v", err)
	}

	svc := NewExpensesService(testLogger(), expenses, trips).(*ExpensesService)
	return expenses, svc, tripId
}

func TestAddExpenseDerivesAmount(t *testing.T) {
	_, svc, tripId := newExpensesFixture(t, model.StatusInProgress)

	exp, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{
		Payment: f64Ptr(100),
		Rate:    f64Ptr(2),
		Reason:  strPtr("diesel"),
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if exp.Amount != 50 {
		t.Fatalf("amount = %v, want 50", exp.Amount)
	}
	if exp.AddedBy != "user_1" || exp.Reason != "diesel" {
		t.Fatalf("record fields: %+v", exp)
	}
	if exp.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}

func TestAddExpenseZeroRate(t *testing.T) {
	_, svc, tripId := newExpensesFixture(t, model.StatusInProgress)

	exp, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{
		Payment: f64Ptr(150),
		Rate:    f64Ptr(0),
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if exp.Amount != 0 {
		t.Fatalf("amount = %v, want 0 for zero rate", exp.Amount)
	}
}

func TestAddExpenseMissingFields(t *testing.T) {
	_, svc, tripId := newExpensesFixture(t, model.StatusInProgress)

	if _, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{Rate: f64Ptr(2)}); !errors.Is(err, myerrors.ErrFieldIsEmpty) {
		t.Fatalf("missing Payment: got %v, want ErrFieldIsEmpty", err)
	}
	if _, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{Payment: f64Ptr(100)}); !errors.Is(err, myerrors.ErrFieldIsEmpty) {
		t.Fatalf("missing rate: got %v, want ErrFieldIsEmpty", err)
	}
}

func TestAddExpenseRequiresInProgressTrip(t *testing.T) {
	for _, status := range []string{model.StatusScheduled, model.StatusCompleted} {
		_, svc, tripId := newExpensesFixture(t, status)
		_, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{
			Payment: f64Ptr(100),
			Rate:    f64Ptr(2),
		})
		if !errors.Is(err, myerrors.ErrTripNotInProgress) {
			t.Errorf("status %s: got %v, want ErrTripNotInProgress", status, err)
		}
	}
}

func TestAddExpenseUnknownTrip(t *testing.T) {
	_, svc, _ := newExpensesFixture(t, model.StatusInProgress)
	_, err := svc.AddExpense(context.Background(), "user_1", "trip_404", dto.ExpenseRequestDto{
		Payment: f64Ptr(100),
		Rate:    f64Ptr(2),
	})
	if !errors.Is(err, myerrors.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	_, svc, _ := newExpensesFixture(t, model.StatusInProgress)
	if err := svc.DeleteExpense(context.Background(), "exp_404"); !errors.Is(err, myerrors.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestTotalForTripRecomputes(t *testing.T) {
	_, svc, tripId := newExpensesFixture(t, model.StatusInProgress)

	ids := []string{}
	for _, e := range []struct{ payment, rate float64 }{{100, 2}, {200, 4}, {300, 3}} {
		exp, err := svc.AddExpense(context.Background(), "user_1", tripId, dto.ExpenseRequestDto{
			Payment: f64Ptr(e.payment),
			Rate:    f64Ptr(e.rate),
		})
		if err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
		ids = append(ids, exp.ExpenseId)
	}

	total, err := svc.TotalForTrip(context.Background(), tripId)
	if err != nil {
		t.Fatalf("TotalForTrip: %v", err)
	}
	if total != 200 {
		t.Fatalf("total = %v, want 200", total)
	}

	// delete the 100-amount record, the next read reflects it immediately
	if err := svc.DeleteExpense(context.Background(), ids[2]); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	total, err = svc.TotalForTrip(context.Background(), tripId)
	if err != nil {
		t.Fatalf("TotalForTrip: %v", err)
	}
	if total != 100 {
		t.Fatalf("total after delete = %v, want 100", total)
	}
}
