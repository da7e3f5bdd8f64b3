package model

import (
	"errors"
	"testing"
	"time"

	"fleetops/internal/fleet-service/core/myerrors"
)

func TestTripTransitions(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)

	trip := Trip{Status: StatusScheduled, StartTime: start}

	if err := trip.Complete(end); !errors.Is(err, myerrors.ErrInvalidStateTransition) {
		t.Fatalf("complete from SCHEDULED: got %v, want ErrInvalidStateTransition", err)
	}

	if err := trip.Start(); err != nil {
		t.Fatalf("start from SCHEDULED: %v", err)
	}
	if trip.Status != StatusInProgress {
		t.Fatalf("status after start = %s", trip.Status)
	}

	if err := trip.Start(); !errors.Is(err, myerrors.ErrInvalidStateTransition) {
		t.Fatalf("start from IN_PROGRESS: got %v, want ErrInvalidStateTransition", err)
	}

	if err := trip.Complete(end); err != nil {
		t.Fatalf("complete from IN_PROGRESS: %v", err)
	}
	if trip.Status != StatusCompleted {
		t.Fatalf("status after complete = %s", trip.Status)
	}
	if trip.EndTime == nil || !trip.EndTime.Equal(end) {
		t.Fatalf("end time not pinned: %v", trip.EndTime)
	}

	// COMPLETED is terminal
	if err := trip.Start(); !errors.Is(err, myerrors.ErrInvalidStateTransition) {
		t.Fatalf("start from COMPLETED: got %v, want ErrInvalidStateTransition", err)
	}
	if err := trip.Complete(end.Add(time.Hour)); !errors.Is(err, myerrors.ErrInvalidStateTransition) {
		t.Fatalf("complete from COMPLETED: got %v, want ErrInvalidStateTransition", err)
	}
}

func TestTripCompleteRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	trip := Trip{Status: StatusInProgress, StartTime: start}

	err := trip.Complete(start.Add(-time.Minute))
	if !errors.Is(err, myerrors.ErrEndBeforeStart) {
		t.Fatalf("got %v, want ErrEndBeforeStart", err)
	}
	if trip.Status != StatusInProgress || trip.EndTime != nil {
		t.Fatalf("rejected transition mutated the trip: %+v", trip)
	}
}

func TestExpenseAmount(t *testing.T) {
	cases := []struct {
		payment, rate, want float64
	}{
		{100, 2, 50},
		{200, 4, 50},
		{300, 3, 100},
		{150, 0, 0}, // degenerate rate never divides by zero
	}
	for _, c := range cases {
		if got := ExpenseAmount(c.payment, c.rate); got != c.want {
			t.Errorf("ExpenseAmount(%v, %v) = %v, want %v", c.payment, c.rate, got, c.want)
		}
	}
}
