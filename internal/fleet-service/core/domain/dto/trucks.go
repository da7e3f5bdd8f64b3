package dto

import "fleetops/internal/fleet-service/core/domain/model"

type TruckRequestDto struct {
	PlateNumber *string  `json:"plateNumber"`
	Model       *string  `json:"model"`
	Capacity    *float64 `json:"capacity"`
	Status      *string  `json:"status,omitempty"`
	DriverName  *string  `json:"driverName,omitempty"`
	DriverPhone *string  `json:"driverPhone,omitempty"`
}

type TruckResponseDto struct {
	Success bool        `json:"success"`
	Data    model.Truck `json:"data"`
}

type TruckListResponseDto struct {
	Data []model.Truck `json:"data"`
}
