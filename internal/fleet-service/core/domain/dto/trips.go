package dto

import (
	"time"

	"fleetops/internal/fleet-service/core/domain/model"
)

type RouteDto struct {
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
}

type TripCreateRequestDto struct {
	TruckId   *string    `json:"truckId"`
	Product   *string    `json:"product"`
	Route     *RouteDto  `json:"route"`
	Transport *float64   `json:"transport"`
	Status    *string    `json:"status,omitempty"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// TripUpdateRequestDto carries the partial PUT body. Status changes are routed
// through the guarded state machine, not applied blindly.
type TripUpdateRequestDto struct {
	Status  *string    `json:"status,omitempty"`
	EndTime *time.Time `json:"endTime,omitempty"`
}

type TripResponseDto struct {
	Success bool       `json:"success"`
	Data    model.Trip `json:"data"`
}

type TripListResponseDto struct {
	Data []model.Trip `json:"data"`
}

// TripDetailDto is the trip plus its reconciled figures, recomputed from the
// current ledger on every read.
type TripDetailDto struct {
	Trip          model.Trip `json:"trip"`
	TotalExpenses float64    `json:"total_expenses"`
	NetProfit     float64    `json:"net_profit"`
}

type TripDetailResponseDto struct {
	Success bool          `json:"success"`
	Data    TripDetailDto `json:"data"`
}

type MessageResponseDto struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
