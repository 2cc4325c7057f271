package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yojanasetu/portal-go/internal/services"
	"github.com/yojanasetu/portal-go/pkg/response"
	"github.com/yojanasetu/portal-go/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often new notifications are polled for the stream.
	pollFrequency = 3 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamNotifications pushes the logged-in user's unread notifications over
// a websocket. Each poll delivers only notifications newer than the last
// one sent on this connection.
func StreamNotifications(svc *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
			return
		}

		done := make(chan struct{})

		// Reader loop: only pongs and the close handshake are expected.
		go func() {
			defer close(done)
			conn.SetReadLimit(512)
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			conn.SetPongHandler(func(string) error {
				_ = conn.SetReadDeadline(time.Now().Add(pongWait))
				return nil
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						log.Printf("WebSocket error: %v", err)
					}
					return
				}
			}
		}()

		defer func() { _ = conn.Close() }()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		pollTicker := time.NewTicker(pollFrequency)
		defer pollTicker.Stop()

		var lastID uint
		for {
			select {
			case <-pollTicker.C:
				notifications, err := svc.UnreadAfter(uid, lastID)
				if err != nil {
					log.Printf("notification poll failed: %v", err)
					continue
				}
				for _, n := range notifications {
					data, err := json.Marshal(n)
					if err != nil {
						continue
					}
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
						return
					}
					if n.ID > lastID {
						lastID = n.ID
					}
				}

			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-done:
				return
			}
		}
	}
}
