package handlers

import (
	"net/http"

	"mojamalca-api/middleware"
	"mojamalca-api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var hub = realtime.NewHub()

// Hub exposes the broadcast hub so main and tests can reach it
func Hub() *realtime.Hub {
	return hub
}

func newEvent(collection, action string, id uint, data interface{}) realtime.Event {
	return realtime.Event{Collection: collection, Action: action, ID: id, Data: data}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser clients are served from another origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscribableTopics are the collections with live screens
var subscribableTopics = map[string]bool{
	"deliveryMenu":   true,
	"menus":          true,
	"menuCategories": true,
	"menuBase":       true,
}

// Subscribe upgrades the connection and streams change events for one
// collection until the client goes away.
func Subscribe(c *gin.Context) {
	topic := c.Param("topic")
	if !subscribableTopics[topic] {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown topic"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.RequestLogger(c).Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &realtime.Client{Topic: topic, Conn: conn}
	hub.Register(client)
	defer hub.Unregister(client)

	// Reads are only used to detect the peer closing
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
