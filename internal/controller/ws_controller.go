package controller

import (
	"net/http"
	"strconv"

	"github.com/classpulse/backend/internal/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin is enforced by the CORS layer in front.
	},
}

type WSController struct {
	hub *realtime.Hub
}

func NewWSController(hub *realtime.Hub) *WSController {
	return &WSController{hub: hub}
}

// joinMessage is what a connected client sends to enter a session room.
type joinMessage struct {
	Action    string `json:"action"`
	SessionID uint   `json:"sessionId"`
}

// Serve upgrades the connection and streams session events to the client.
// A `sessionId` query parameter joins immediately; afterwards the client
// may send {"action":"join","sessionId":N} messages to join more rooms.
// Membership is process-local; a reconnecting client re-joins and
// re-fetches aggregate state.
func (c *WSController) Serve(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}

	sub := c.hub.Subscribe()
	defer func() {
		sub.Close()
		conn.Close()
	}()

	if raw := ctx.Query("sessionId"); raw != "" {
		if sessionID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			c.hub.Join(sub, uint(sessionID))
		}
	}

	// Reader: join requests only. Exits on disconnect and stops the writer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg joinMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Action == "join" && msg.SessionID != 0 {
				c.hub.Join(sub, msg.SessionID)
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Debug().Err(err).Msg("Websocket write failed, dropping subscriber")
				return
			}
		case <-done:
			return
		}
	}
}
