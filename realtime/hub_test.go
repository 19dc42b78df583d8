package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dial connects a websocket client to a hub registered under one topic.
func dial(t *testing.T, hub *Hub, topic string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&Client{Topic: topic, Conn: conn})
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return hub.Subscribers(topic) > 0
	}, time.Second, 10*time.Millisecond)
	return conn
}

func TestHubBroadcastReachesTopicSubscribers(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub, "deliveryMenu")

	hub.Broadcast(Event{Collection: "deliveryMenu", Action: "created", ID: 7})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, "deliveryMenu", ev.Collection)
	assert.Equal(t, "created", ev.Action)
	assert.EqualValues(t, 7, ev.ID)
}

func TestHubBroadcastSkipsOtherTopics(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub, "deliveryMenu")

	hub.Broadcast(Event{Collection: "menus", Action: "updated", ID: 1})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "no message may arrive for an unrelated topic")
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	client := &Client{Topic: "menus"}

	hub.Register(client)
	assert.Equal(t, 1, hub.Subscribers("menus"))

	hub.Unregister(client)
	assert.Equal(t, 0, hub.Subscribers("menus"))
}
