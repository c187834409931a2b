// File: tests/integration/setup_test.go
package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard_backend/internal/app"
	"taskboard_backend/internal/auth"
	"taskboard_backend/internal/config"
	"taskboard_backend/internal/identity"
	"taskboard_backend/internal/jobs"
	"taskboard_backend/internal/session"
	"taskboard_backend/internal/task"
	"taskboard_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider stands in for a real OAuth provider so the full login
// flow can run without network access. The next callback yields whatever
// profile (or error) the test staged.
type fakeProvider struct {
	name        string
	consentURL  string
	nextProfile *identity.Profile
	nextErr     error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) LoginURL(c *gin.Context) (string, error) {
	return f.consentURL, nil
}

func (f *fakeProvider) HandleCallback(c *gin.Context) (*identity.Profile, error) {
	if f.nextErr != nil {
		return nil, f.nextErr
	}
	return f.nextProfile, nil
}

// testEnv is a fully wired application with fake identity providers.
type testEnv struct {
	router *gin.Engine
	cfg    *config.Config
	fakes  map[string]*fakeProvider
	tasks  *task.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		GinMode:              gin.TestMode,
		ServerHost:           "127.0.0.1",
		ServerPort:           "0",
		ServerTimeout:        5 * time.Second,
		StaticDir:            t.TempDir(),
		AppRootURL:           "/",
		SessionCookieName:    "taskboard_session",
		SessionTTL:           time.Hour,
		SessionSweepSchedule: "@hourly",
	}
	logger := zap.NewNop()

	fakes := map[string]*fakeProvider{
		identity.ProviderGoogle:   {name: identity.ProviderGoogle, consentURL: "https://accounts.google.example/consent"},
		identity.ProviderFacebook: {name: identity.ProviderFacebook, consentURL: "https://facebook.example/dialog"},
	}
	registry := identity.Registry{}
	for name, fake := range fakes {
		registry[name] = fake
	}

	sessions := session.NewStore(cfg, logger)
	users := user.NewService(user.NewMemoryRepository(), logger)
	authService := auth.NewService(registry, users, sessions, logger)
	authHandler := auth.NewHandler(authService, cfg, logger)

	taskStore := task.NewStore()
	taskHandler := task.NewHandler(task.NewService(taskStore, logger), logger)
	userHandler := user.NewHandler(users, logger)

	sweepJob := jobs.NewSessionSweepJob(sessions, logger, cfg)

	server, err := app.NewServer(cfg, logger, authService, taskHandler, userHandler, authHandler, sweepJob)
	require.NoError(t, err)

	return &testEnv{
		router: server.Router(),
		cfg:    cfg,
		fakes:  fakes,
		tasks:  taskStore,
	}
}

// login drives the callback route for a staged profile and returns the
// session cookie the server minted.
func (e *testEnv) login(t *testing.T, provider, providerID, displayName string) *http.Cookie {
	t.Helper()
	e.fakes[provider].nextProfile = &identity.Profile{
		Provider:    provider,
		ProviderID:  providerID,
		DisplayName: displayName,
	}
	e.fakes[provider].nextErr = nil

	w := e.do(t, http.MethodGet, fmt.Sprintf("/auth/%s/callback?code=stub", provider), "", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == e.cfg.SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("no session cookie set after %s login", provider)
	return nil
}

// do performs a request against the in-memory router.
func (e *testEnv) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
