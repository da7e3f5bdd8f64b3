package model

import "time"

const (
	TruckAvailable   = "AVAILABLE"
	TruckInUse       = "IN_USE"
	TruckMaintenance = "MAINTENANCE"
)

var AllowedTruckStatuses = map[string]bool{
	TruckAvailable:   true,
	TruckInUse:       true,
	TruckMaintenance: true,
}

type Truck struct {
	TruckId     string    `json:"truck_id"`
	PlateNumber string    `json:"plate_number"`
	Model       string    `json:"model"`
	Capacity    float64   `json:"capacity"`
	Status      string    `json:"status"`
	DriverName  *string   `json:"driver_name,omitempty"`
	DriverPhone *string   `json:"driver_phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
