package websocket

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PhaseEvent is pushed to subscribed clients whenever a session changes phase,
// so the UI can show scoring progress without polling.
type PhaseEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Phase     string `json:"phase"`
	Timestamp int64  `json:"timestamp"`
}

// subscriberBuffer bounds the per-connection event queue. A subscriber that
// falls further behind loses events rather than stalling publishers.
const subscriberBuffer = 16

type subscriber struct {
	conn   *websocket.Conn
	events chan PhaseEvent
}

// Hub tracks event subscribers per session. Publishing only enqueues; the
// network write happens on each subscriber's own goroutine, so a stalled
// client never blocks a session's phase transitions.
type Hub struct {
	mu   sync.Mutex
	subs map[string][]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string][]*subscriber)}
}

// Handler upgrades the request and subscribes the client to the session's
// phase events. The connection is held open until the client closes it.
func (h *Hub) Handler(c *gin.Context) {
	sessionID := c.Param("id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		conn:   conn,
		events: make(chan PhaseEvent, subscriberBuffer),
	}

	h.mu.Lock()
	h.subs[sessionID] = append(h.subs[sessionID], sub)
	h.mu.Unlock()

	go h.writeLoop(sessionID, sub)

	// Drain client frames until the connection drops, then unsubscribe.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.remove(sessionID, sub)
		conn.Close()
	}()
}

func (h *Hub) writeLoop(sessionID string, sub *subscriber) {
	for event := range sub.events {
		if err := sub.conn.WriteJSON(event); err != nil {
			h.remove(sessionID, sub)
			sub.conn.Close()
			return
		}
	}
}

// remove unsubscribes and closes the event channel. Events are only sent while
// holding the hub mutex, so closing under the same mutex cannot race a send.
func (h *Hub) remove(sessionID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subs[sessionID]
	for i, s := range subs {
		if s == sub {
			h.subs[sessionID] = append(subs[:i], subs[i+1:]...)
			close(sub.events)
			break
		}
	}
	if len(h.subs[sessionID]) == 0 {
		delete(h.subs, sessionID)
	}
}

// PublishPhase fans a phase transition out to the session's subscribers. Its
// signature matches services.PhaseListener. It never blocks: subscribers with
// a full queue miss the event.
func (h *Hub) PublishPhase(sessionID, phase string) {
	event := PhaseEvent{
		Type:      "phase",
		SessionID: sessionID,
		Phase:     phase,
		Timestamp: time.Now().Unix(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[sessionID] {
		select {
		case sub.events <- event:
		default:
		}
	}
}
