package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("session not found")

// Manager owns the live sessions behind the HTTP API. All session mutation
// goes through Do, which serializes access the same way discrete UI events
// would; a single client drives one session at a time.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Create registers a new session in StateLoading and returns it.
func (m *Manager) Create(file string, chunkSize int) *Session {
	s := New(uuid.NewString(), file, chunkSize)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Do runs fn with exclusive access to the named session.
func (m *Manager) Do(id string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNoSession
	}
	return fn(s)
}

// Delete discards a session; submitted sessions are not reusable.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
