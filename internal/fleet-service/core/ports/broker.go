package ports

import (
	"context"

	messagebrokerdto "fleetops/internal/fleet-service/core/domain/message_broker_dto"
)

type IFleetBroker interface {
	Close() error
	IsAlive() bool
	PushTripStatus(ctx context.Context, msg messagebrokerdto.TripStatusEvent) error
}
