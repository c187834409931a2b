// File: tests/integration/app_test.go
package integration

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())
}

func TestUnknownAPIRouteIsJSON404(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestSPAFallback(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(env.cfg.StaticDir, "index.html"), []byte("<html>shell</html>"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(env.cfg.StaticDir, "app.js"), []byte("console.log(1)"), 0o644))

	// Existing static assets are served as-is.
	w := env.do(t, http.MethodGet, "/app.js", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	// Anything else falls back to the app shell for client-side routing.
	w = env.do(t, http.MethodGet, "/some/client/route", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>shell</html>", w.Body.String())
}
