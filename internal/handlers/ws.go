package handlers

import (
	"net/http"

	"trivia-backend/internal/logger"
	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
	log *logger.Logger
}

func NewWSHandler(hub *ws.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuestionEvents godoc
// @Summary      WebSocket feed of question bank changes
// @Description  Receives question_created and question_deleted events
// @Tags         websocket
// @Router       /ws/questions [get]
func (h *WSHandler) HandleQuestionEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	// clients never send anything; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
