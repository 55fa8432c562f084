package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newEventServer(t *testing.T, hub *Hub) (*httptest.Server, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/sessions/:id/events", hub.Handler)
	server := httptest.NewServer(router)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/sessions/s1/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	return server, conn
}

func TestHubDeliversPhaseEvents(t *testing.T) {
	hub := NewHub()
	server, conn := newEventServer(t, hub)
	defer server.Close()
	defer conn.Close()

	hub.PublishPhase("s1", "submitting")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event PhaseEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}
	if event.Type != "phase" || event.SessionID != "s1" || event.Phase != "submitting" {
		t.Errorf("Unexpected event: %+v", event)
	}
}

func TestPublishPhaseNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	server, conn := newEventServer(t, hub)
	defer server.Close()
	defer conn.Close()

	// The client never reads; far more events than the queue holds must still
	// publish promptly.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10*subscriberBuffer; i++ {
			hub.PublishPhase("s1", "submitting")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PublishPhase blocked on a subscriber that is not reading")
	}
}

func TestPublishPhaseToSessionWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	// Publishing with no subscribers is a no-op, not a panic.
	hub.PublishPhase("nobody", "idle")
}
