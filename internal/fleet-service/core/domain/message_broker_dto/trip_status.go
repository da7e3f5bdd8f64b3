package messagebrokerdto

// TripStatusEvent is published to the fleet_topic exchange on every trip
// status transition so downstream consumers (dispatch boards, accounting)
// see the lifecycle without polling.
type TripStatusEvent struct {
	TripId        string  `json:"trip_id"`
	TruckId       string  `json:"truck_id"`
	Status        string  `json:"status"`
	Transport     float64 `json:"transport"`
	Timestamp     string  `json:"timestamp"`
	CorrelationID string  `json:"correlation_id"`
}
