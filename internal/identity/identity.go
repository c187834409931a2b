// File: internal/identity/identity.go
package identity

import (
	"taskboard_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Profile is the normalized identity every provider variant produces:
// the (provider, providerId) pair uniquely identifying an external login,
// plus a human-readable display name.
type Profile struct {
	Provider    string
	ProviderID  string
	DisplayName string
}

// Provider is one external identity provider. LoginURL starts the
// handshake (and plants the CSRF state cookie); HandleCallback consumes
// the provider's redirect and yields the normalized profile.
type Provider interface {
	Name() string
	LoginURL(c *gin.Context) (string, error)
	HandleCallback(c *gin.Context) (*Profile, error)
}

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
	ProviderApple    = "apple"
)

// Registry holds the configured providers, keyed by name.
type Registry map[string]Provider

// NewRegistry builds the provider registry from configuration.
func NewRegistry(cfg *config.Config, logger *zap.Logger) Registry {
	return Registry{
		ProviderGoogle:   newGoogleProvider(cfg, logger),
		ProviderFacebook: newFacebookProvider(cfg, logger),
		ProviderApple:    newAppleProvider(cfg, logger),
	}
}

// Lookup returns the provider registered under the given name.
func (r Registry) Lookup(name string) (Provider, bool) {
	p, ok := r[name]
	return p, ok
}
