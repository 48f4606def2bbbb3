package interview

import (
	"errors"
	"sync"
	"time"
)

// ErrSessionNotFound is returned when the given session id is not registered.
var ErrSessionNotFound = errors.New("session not found")

// Registry is the process-wide map from session id to live session state.
// It owns session lifecycle; the sessions it hands out carry their own
// mutex for per-session serialization.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session under id. A session already registered
// under the same id is replaced: clients reuse ids when they restart an
// interview, so creation is treated as an idempotent restart rather than a
// conflict.
func (r *Registry) Create(id, studentName, projectName string) *Session {
	s := &Session{
		ID:          id,
		StudentName: studentName,
		ProjectName: projectName,
		StartedAt:   time.Now(),
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	return s
}

// Get returns the session registered under id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove unregisters the session under id and releases its state.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
