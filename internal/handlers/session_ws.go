package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// browser clients connect from the UI origin; CORS policy is enforced
	// by the router middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

const statusPingInterval = 30 * time.Second

// StreamSessionStatus upgrades the connection and pushes every submission
// status transition until the client disconnects.
func StreamSessionStatus(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("Failed to upgrade status stream: %v", err)
		return
	}
	defer conn.Close()

	updates := Session.Subscribe()
	defer Session.Unsubscribe(updates)

	// current status first so late subscribers are not stuck on stale UI
	if err := conn.WriteJSON(gin.H{"status": Session.Snapshot().Status}); err != nil {
		return
	}

	// drain client frames to detect disconnects
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(statusPingInterval)
	defer ticker.Stop()

	for {
		select {
		case status, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(gin.H{"status": status}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
