// File: internal/session/store_test.go
package session

import (
	"testing"
	"time"

	"taskboard_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(&config.Config{SessionTTL: ttl}, zap.NewNop())
}

func TestStore_CreateAndResolve(t *testing.T) {
	s := newTestStore(time.Hour)

	token, err := s.Create(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := s.UserID(token)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestStore_TokensAreUnique(t *testing.T) {
	s := newTestStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := s.Create(int64(i))
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
	assert.Equal(t, 100, s.Len())
}

func TestStore_UnknownAndEmptyTokens(t *testing.T) {
	s := newTestStore(time.Hour)

	_, ok := s.UserID("no-such-token")
	assert.False(t, ok)
	_, ok = s.UserID("")
	assert.False(t, ok)
}

func TestStore_Destroy(t *testing.T) {
	s := newTestStore(time.Hour)

	token, err := s.Create(7)
	require.NoError(t, err)

	s.Destroy(token)
	_, ok := s.UserID(token)
	assert.False(t, ok)

	// Destroying twice is harmless.
	s.Destroy(token)
	s.Destroy("never-existed")
}

func TestStore_Expiry(t *testing.T) {
	s := newTestStore(20 * time.Millisecond)

	token, err := s.Create(7)
	require.NoError(t, err)

	_, ok := s.UserID(token)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	// Reads see the expiry immediately, even before a sweep runs.
	_, ok = s.UserID(token)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	// The sweep evicts the expired entry.
	remaining := s.DeleteExpired()
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 0, s.Len())
}
