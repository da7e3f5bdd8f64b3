package ports

import websocketdto "fleetops/internal/fleet-service/core/domain/websocket_dto"

type INotifyDashboard interface {
	Broadcast(msg websocketdto.Event)
}
