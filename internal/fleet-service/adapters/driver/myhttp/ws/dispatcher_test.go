package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleetops/internal/mylogger"

	websocketdto "fleetops/internal/fleet-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

func testLogger(t *testing.T) mylogger.Logger {
	t.Helper()
	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func dialDashboard(t *testing.T, d *Dispatcher) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(d.DashboardHandler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// registration happens just after the upgrade returns on the server side
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		d.RLock()
		n := len(d.clients)
		d.RUnlock()
		if n == 1 {
			return conn
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("client never registered")
	return nil
}

func TestBroadcastReachesDashboardClient(t *testing.T) {
	d := NewDispatcher(testLogger(t))
	conn := dialDashboard(t, d)

	data, _ := json.Marshal(websocketdto.TripStatusUpdateDto{TripId: "trip_1", Status: "IN_PROGRESS"})
	d.Broadcast(websocketdto.Event{Type: "trip_status_update", Data: data})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got websocketdto.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if got.Type != "trip_status_update" {
		t.Fatalf("event type = %s", got.Type)
	}
}

func TestRemoveClientStopsWriter(t *testing.T) {
	d := NewDispatcher(testLogger(t))
	dialDashboard(t, d)

	var client *Client
	d.RLock()
	for c := range d.clients {
		client = c
	}
	d.RUnlock()

	d.RemoveClient(client)

	// the closed egress is what lets WriteMessage return instead of leaking
	select {
	case _, ok := <-client.egress:
		if ok {
			t.Fatal("egress should be closed after removal")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("egress still open after removal")
	}

	d.RLock()
	defer d.RUnlock()
	if len(d.clients) != 0 {
		t.Fatalf("clients left registered: %d", len(d.clients))
	}
}
