// File: internal/identity/state.go
package identity

import (
	"fmt"
	"net/http"

	"taskboard_backend/internal/config"
	"taskboard_backend/internal/platform/crypto"

	"github.com/gin-gonic/gin"
)

// setOAuthCookie sets a short-lived cookie for the handshake state or nonce.
func setOAuthCookie(c *gin.Context, cfg *config.Config, name, value string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cfg.OAuthCookieDomain,
		MaxAge:   cfg.OAuthCookieMaxAgeMinutes * 60,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: cfg.OAuthCookieHTTPOnly,
		SameSite: parseSameSite(cfg.OAuthCookieSameSite),
	})
}

// getOAuthCookie retrieves and deletes an OAuth cookie. Each state and
// nonce value is single-use.
func getOAuthCookie(c *gin.Context, cfg *config.Config, name string) (string, error) {
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return "", fmt.Errorf("%s cookie not found: %w", name, err)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cfg.OAuthCookieDomain,
		MaxAge:   -1,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: cfg.OAuthCookieHTTPOnly,
		SameSite: parseSameSite(cfg.OAuthCookieSameSite),
	})
	return cookie.Value, nil
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func generateAndSetOAuthState(c *gin.Context, cfg *config.Config) (string, error) {
	state, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	setOAuthCookie(c, cfg, cfg.OAuthStateCookieName, state)
	return state, nil
}

func generateAndSetOAuthNonce(c *gin.Context, cfg *config.Config) (string, error) {
	nonce, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	setOAuthCookie(c, cfg, cfg.OAuthNonceCookieName, nonce)
	return nonce, nil
}

// verifyState compares the state echoed by the provider against the value
// planted in the cookie before the redirect.
func verifyState(c *gin.Context, cfg *config.Config, received string) error {
	stored, err := getOAuthCookie(c, cfg, cfg.OAuthStateCookieName)
	if err != nil {
		return fmt.Errorf("missing OAuth state cookie: %w", err)
	}
	if received == "" || received != stored {
		return fmt.Errorf("OAuth state mismatch")
	}
	return nil
}
