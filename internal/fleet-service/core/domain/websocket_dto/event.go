package websocketdto

import "encoding/json"

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// TripStatusUpdateDto is pushed to dashboard subscribers when a trip changes
// status, mirroring what the broker event carries.
type TripStatusUpdateDto struct {
	TripId        string  `json:"trip_id"`
	TruckId       string  `json:"truck_id"`
	Status        string  `json:"status"`
	NetProfit     float64 `json:"net_profit,omitempty"`
	CorrelationID string  `json:"correlation_id"`
}
