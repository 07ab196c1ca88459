package session

import (
	"sync"
	"time"

	"bakehouse-backend/internal/models"
)

// Store is the in-memory session registry. Everything here is volatile:
// a restart logs every user out.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a fresh session for the given identity.
func (st *Store) Create(email string, role models.UserRole) *Session {
	s := newSession(email, role, st.ttl)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the live session with the given id, or nil when it is unknown
// or already expired.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	s := st.sessions[id]
	st.mu.RUnlock()

	if s == nil || s.Expired(time.Now()) {
		return nil
	}
	return s
}

// Delete drops the session. Used by logout.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (st *Store) Sweep() int {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.Expired(now) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of registered sessions, expired or not.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
