// File: internal/session/store.go
package session

import (
	"fmt"
	"time"

	"taskboard_backend/internal/config"
	"taskboard_backend/internal/platform/crypto"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Store maps opaque session tokens to user IDs. Entries expire after the
// configured TTL. The store is built without a background janitor; the
// session sweep job owns eviction so there is exactly one goroutine
// touching expired entries.
type Store struct {
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a session store with the TTL from configuration.
func NewStore(cfg *config.Config, logger *zap.Logger) *Store {
	return &Store{
		cache:  cache.New(cfg.SessionTTL, 0),
		ttl:    cfg.SessionTTL,
		logger: logger.Named("SessionStore"),
	}
}

// Create mints a new session token for the given user ID.
func (s *Store) Create(userID int64) (string, error) {
	token, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	s.cache.Set(token, userID, s.ttl)
	return token, nil
}

// UserID resolves a session token to the user ID it was minted for.
// Expired or unknown tokens resolve to nothing.
func (s *Store) UserID(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	v, found := s.cache.Get(token)
	if !found {
		return 0, false
	}
	userID, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return userID, true
}

// Destroy invalidates a session token. Destroying an unknown token is a no-op.
func (s *Store) Destroy(token string) {
	s.cache.Delete(token)
}

// DeleteExpired evicts all expired sessions and reports how many remain.
func (s *Store) DeleteExpired() int {
	s.cache.DeleteExpired()
	return s.cache.ItemCount()
}

// Len returns the number of stored sessions, expired entries included.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
