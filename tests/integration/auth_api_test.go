// File: tests/integration/auth_api_test.go
package integration

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_RedirectsToProviderConsent(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/auth/google", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://accounts.google.example/consent", w.Header().Get("Location"))
}

func TestLogin_UnknownProvider(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/auth/github", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestCallback_EstablishesSession(t *testing.T) {
	env := newTestEnv(t)

	cookie := env.login(t, "google", "g-1", "Alice")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	w := env.do(t, http.MethodGet, "/api/user", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"displayName":"Alice"`)
}

func TestCallback_ProviderFailureRedirectsWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	env.fakes["google"].nextErr = errors.New("exchange failed")

	w := env.do(t, http.MethodGet, "/auth/google/callback?error=access_denied", "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, env.cfg.SessionCookieName, cookie.Name)
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "google", "g-1", "Alice")

	w := env.do(t, http.MethodGet, "/auth/logout", "", cookie)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The cookie is expired on the client.
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == env.cfg.SessionCookieName {
			assert.Less(t, c.MaxAge, 0)
			cleared = true
		}
	}
	assert.True(t, cleared)

	// The server-side session is gone too; replaying the old cookie no
	// longer authenticates.
	w = env.do(t, http.MethodGet, "/api/tasks", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestLogout_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}
