package services

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore keeps live sessions in memory. Nothing here survives the
// process; history and session fields are session-lifetime only.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	listener PhaseListener
}

// NewSessionStore builds an empty store. The listener, if non-nil, receives
// phase transitions for every session created through the store.
func NewSessionStore(listener PhaseListener) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		listener: listener,
	}
}

// Create registers a fresh session and returns it.
func (st *SessionStore) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	session := NewSession(uuid.NewString(), st.listener)
	st.sessions[session.ID()] = session
	return session
}

// Get looks up a session by id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	return session, ok
}
