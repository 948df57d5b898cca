package game

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned when a session id is unknown,
// typically because it already ended and was evicted.
var ErrSessionNotFound = errors.New("session not found")

// Manager holds the live minigame sessions, keyed by session id.
// Sessions are ephemeral: they exist only in memory and are closed
// and evicted when the player abandons or finishes them.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager creates an empty session registry
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]Session)}
}

// Put registers a session under its id
func (m *Manager) Put(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID()] = s
}

// Get looks up a live session
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove closes a session and drops it from the registry. Closing
// tears down any timers the session owns; removing an unknown id is a
// no-op.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

// CloseAll tears down every live session, used at server shutdown
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
