// File: internal/session/cookie.go
package session

import (
	"net/http"

	"taskboard_backend/internal/config"

	"github.com/gin-gonic/gin"
)

// SetCookie attaches the session token to the response. The cookie is
// HttpOnly; scripts on the page never see the raw token.
func SetCookie(c *gin.Context, cfg *config.Config, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.SessionCookieDomain,
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		Secure:   cfg.SessionCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c *gin.Context, cfg *config.Config) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cfg.SessionCookieDomain,
		MaxAge:   -1,
		Secure:   cfg.SessionCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the session token from the request cookie.
// Returns an empty string when no cookie is present.
func TokenFromRequest(c *gin.Context, cfg *config.Config) string {
	cookie, err := c.Request.Cookie(cfg.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
