package ws

import (
	"context"

	websocketdto "fleetops/internal/fleet-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx    context.Context
	conn   *websocket.Conn
	dis    *Dispatcher
	egress chan websocketdto.Event
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher) *Client {
	return &Client{
		ctx:    ctx,
		conn:   conn,
		dis:    dis,
		egress: make(chan websocketdto.Event, 16),
	}
}

// ReadMessage drains the connection so pings and close frames are processed.
// The dashboard feed is one-way, anything the client sends is discarded.
func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	// loop forever
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Action("wsRead").Warn("unexpected close: " + err.Error())
			}
			break
		}
	}
}

func (c *Client) WriteMessage() {
	for {
		select {
		case <-c.ctx.Done():
			c.conn.Close()
			return
		case event, ok := <-c.egress:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				c.dis.log.Action("wsWrite").Warn("failed to write event: " + err.Error())
				return
			}
		}
	}
}
