package session

import (
	"sync"
	"time"

	"bakehouse-backend/internal/fair"
	"bakehouse-backend/internal/models"
	"bakehouse-backend/internal/shop"

	"github.com/google/uuid"
)

// Session is the explicit per-login context: identity, role and the two
// in-memory ledgers. Created on login, destroyed on logout or expiry; all
// ledger state dies with it.
type Session struct {
	mu sync.Mutex

	ID        string
	Email     string
	Role      models.UserRole
	CreatedAt time.Time
	ExpiresAt time.Time

	Fair *fair.Ledger
	Shop *shop.Ledger
}

func newSession(email string, role models.UserRole, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Fair:      fair.NewLedger(),
		Shop:      shop.NewLedger(),
	}
}

// Lock serializes ledger access for one request. The ledgers themselves are
// not safe for concurrent use.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
