package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ikkim/blog-api/internal/middleware"
	ws "github.com/ikkim/blog-api/internal/websocket"
)

// Any origin may subscribe.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type FeedController struct {
	hub *ws.Hub
}

func NewFeedController(hub *ws.Hub) *FeedController {
	return &FeedController{hub: hub}
}

// Subscribe upgrades the connection and streams post events to it
// GET /ws/posts
func (ctrl *FeedController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err)
		return
	}

	client := ws.NewClient(ctrl.hub, conn)
	if !ctrl.hub.Register(client) {
		return
	}

	go client.WritePump()
	go client.ReadPump()

	log.Info("Feed connection established", map[string]interface{}{
		"client_id": client.ID(),
	})
}
