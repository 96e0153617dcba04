package ws

import (
	"encoding/json"
	"sync"
	"time"

	"trivia-backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// DefaultWriteWait bounds how long a broadcast waits on one client.
const DefaultWriteWait = 5 * time.Second

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// QuestionChange is the payload of question events.
type QuestionChange struct {
	ID             uint  `json:"id"`
	TotalQuestions int64 `json:"total_questions"`
}

// Hub fans question bank events out to every connected client.
type Hub struct {
	mu        sync.Mutex
	conns     map[*websocket.Conn]bool
	writeWait time.Duration
	log       *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return NewHubWithWriteWait(log, DefaultWriteWait)
}

func NewHubWithWriteWait(log *logger.Logger, writeWait time.Duration) *Hub {
	return &Hub{
		conns:     make(map[*websocket.Conn]bool),
		writeWait: writeWait,
		log:       log,
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = true
	h.log.Debug().Int("total", len(h.conns)).Msg("ws: client connected")
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
		h.log.Debug().Int("total", len(h.conns)).Msg("ws: client disconnected")
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

// Broadcast writes event to all clients, dropping the ones that fail or
// do not accept the write within the hub's write wait. Writes happen under
// the lock since a websocket connection allows a single concurrent writer.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("ws: marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		err := conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err == nil {
			err = conn.WriteMessage(websocket.TextMessage, data)
		}
		if err != nil {
			h.log.Warn().Err(err).Msg("ws: write event")
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
