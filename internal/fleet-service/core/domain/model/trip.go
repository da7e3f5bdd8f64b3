package model

import (
	"fmt"
	"time"

	"fleetops/internal/fleet-service/core/myerrors"
)

const (
	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

var AllowedProducts = map[string]bool{
	"CEMENT":  true,
	"SAND":    true,
	"GRAVEL":  true,
	"STEEL":   true,
	"PRODUCE": true,
	"GENERAL": true,
}

type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type Trip struct {
	TripId    string     `json:"trip_id"`
	TruckId   string     `json:"truck_id"`
	Product   string     `json:"product"`
	Route     Route      `json:"route"`
	Transport float64    `json:"transport"`
	Status    string     `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Start moves the trip from SCHEDULED to IN_PROGRESS. The transition is
// one-directional, any other current status is rejected.
func (t *Trip) Start() error {
	if t.Status != StatusScheduled {
		return fmt.Errorf("%w: cannot start trip in status %s", myerrors.ErrInvalidStateTransition, t.Status)
	}
	t.Status = StatusInProgress
	return nil
}

// Complete moves the trip from IN_PROGRESS to COMPLETED and pins the end time.
// COMPLETED is terminal, completed trips never change status again.
func (t *Trip) Complete(endTime time.Time) error {
	if t.Status != StatusInProgress {
		return fmt.Errorf("%w: cannot complete trip in status %s", myerrors.ErrInvalidStateTransition, t.Status)
	}
	if endTime.Before(t.StartTime) {
		return fmt.Errorf("%w: end %s start %s", myerrors.ErrEndBeforeStart, endTime.Format(time.RFC3339), t.StartTime.Format(time.RFC3339))
	}
	t.Status = StatusCompleted
	t.EndTime = &endTime
	return nil
}

func (t *Trip) IsCompleted() bool {
	return t.Status == StatusCompleted
}
