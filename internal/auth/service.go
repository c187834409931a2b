// File: internal/auth/service.go
package auth

import (
	"context"

	"taskboard_backend/internal/identity"
	"taskboard_backend/internal/session"
	"taskboard_backend/internal/user"

	"go.uber.org/zap"
)

// Service glues the identity providers, the user resolver, and the session
// store together: a verified provider profile goes in, a session token
// comes out.
type Service struct {
	providers identity.Registry
	users     *user.Service
	sessions  *session.Store
	logger    *zap.Logger
}

// NewService creates a new auth service.
func NewService(
	providers identity.Registry,
	users *user.Service,
	sessions *session.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		providers: providers,
		users:     users,
		sessions:  sessions,
		logger:    logger.Named("AuthService"),
	}
}

// Provider returns the identity provider registered under the given name.
func (s *Service) Provider(name string) (identity.Provider, bool) {
	return s.providers.Lookup(name)
}

// Login resolves the profile to an internal user (creating one on first
// sight) and mints a session token for it.
func (s *Service) Login(ctx context.Context, profile *identity.Profile) (string, error) {
	usr, created, err := s.users.ResolveOrCreate(ctx, profile.Provider, profile.ProviderID, profile.DisplayName)
	if err != nil {
		return "", err
	}
	token, err := s.sessions.Create(usr.ID)
	if err != nil {
		return "", err
	}
	s.logger.Info("Login successful",
		zap.Int64("userID", usr.ID),
		zap.String("provider", profile.Provider),
		zap.Bool("created", created),
	)
	return token, nil
}

// Logout invalidates the session token. Invalidating an already-dead token
// is a no-op.
func (s *Service) Logout(token string) error {
	s.sessions.Destroy(token)
	return nil
}

// ResolveSession implements middleware.SessionResolver: it maps a session
// token to the user it was minted for.
func (s *Service) ResolveSession(ctx context.Context, token string) (int64, string, bool) {
	userID, ok := s.sessions.UserID(token)
	if !ok {
		return 0, "", false
	}
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, "", false
	}
	return usr.ID, usr.Role, true
}
