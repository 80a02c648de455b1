// Package auth implements account registration, login and bearer-token sessions
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// SessionTTL is how long an issued token stays valid
const SessionTTL = 24 * time.Hour

// SessionStore maps opaque bearer tokens to user identity. It is injected
// so deployments can swap the in-memory store for the redis-backed one.
type SessionStore interface {
	Create(userID uint) (string, error)
	Validate(token string) (uint, bool)
	Destroy(token string)
}

type sessionEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is the single-instance session store. Expired entries are
// evicted lazily on lookup and in bulk by the cron sweep.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	ttl      time.Duration
}

// NewMemoryStore returns a MemoryStore with the given token lifetime
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
	}
}

// Create issues a token for the user
func (s *MemoryStore) Create(userID uint) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = sessionEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

// Validate returns the owning user id if the token is present and unexpired.
// An expired token is evicted and treated as absent.
func (s *MemoryStore) Validate(token string) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return 0, false
	}
	return entry.userID, true
}

// Destroy removes the token unconditionally
func (s *MemoryStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep evicts all expired entries and returns how many were removed
func (s *MemoryStore) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// randomToken returns 32 bytes from crypto/rand, base64url encoded
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
