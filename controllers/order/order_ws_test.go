package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-dev/storefront-api/models"
)

func newWSServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForClients(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		wsMu.Lock()
		got := len(wsClients)
		wsMu.Unlock()
		if got == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d registered clients", n)
}

func TestBroadcastDeliversOrderEvents(t *testing.T) {
	_, url := newWSServer(t)

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()
	waitForClients(t, 1)

	broadcastOrderEvent("order.created", models.Order{ID: 7, OrderRef: "ORD-7"})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)

	var evt orderEvent
	require.NoError(t, json.Unmarshal(data, &evt))
	assert.Equal(t, "order.created", evt.Event)
	assert.Equal(t, uint(7), evt.Order.ID)
	assert.Equal(t, "ORD-7", evt.Order.OrderRef)
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	_, url := newWSServer(t)

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()
	waitForClients(t, 1)

	wsMu.Lock()
	var serverConn *websocket.Conn
	for conn := range wsClients {
		serverConn = conn
	}
	wsMu.Unlock()
	require.NotNil(t, serverConn)

	// Kill the transport out from under the registry, then broadcast.
	require.NoError(t, serverConn.Close())
	broadcastOrderEvent("order.created", models.Order{ID: 8, OrderRef: "ORD-8"})

	waitForClients(t, 0)
}
