package ws

import (
	"context"
	"net/http"
	"sync"

	"fleetops/internal/mylogger"

	websocketdto "fleetops/internal/fleet-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

// ================================================================================================== //
// websocketUpgrader is used to upgrade incomming HTTP requests into a persitent websocket connection //
// ================================================================================================== //
var websocketUpgrader = websocket.Upgrader{
	// TODO: add checkOrigin
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

type Dispatcher struct {
	clients ClientList
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		clients: make(ClientList),
		log:     log,
	}
}

// DashboardHandler upgrades the request and keeps the connection subscribed
// until the client goes away.
func (d *Dispatcher) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("dashboardHandler")

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		client := NewClient(context.Background(), conn, d)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()
	}
}

// Broadcast fans the event out to every connected dashboard. A client whose
// egress buffer is full is dropped rather than allowed to stall the rest.
func (d *Dispatcher) Broadcast(msg websocketdto.Event) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		select {
		case client.egress <- msg:
		default:
			go d.RemoveClient(client)
		}
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

// RemoveClient closes the connection and the egress channel so both pump
// goroutines terminate. Broadcast never races the close: it sends under RLock
// while removal holds the write lock.
func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		client.conn.Close()
		close(client.egress)
		delete(d.clients, client)
	}
}
