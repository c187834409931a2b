// File: internal/identity/apple.go
package identity

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"taskboard_backend/internal/config"

	"github.com/MicahParks/keyfunc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	appleAuthURL = "https://appleid.apple.com/auth/authorize"
	appleIssuer  = "https://appleid.apple.com"
)

// appleJWKSURL is a variable so tests can point it at a stub server.
var appleJWKSURL = "https://appleid.apple.com/auth/keys"

// Apple posts the callback as a form (response_mode=form_post) and already
// includes a signed id_token, so no code exchange is needed: verifying the
// token against Apple's JWKS is the whole handshake.
type appleProvider struct {
	cfg    *config.Config
	logger *zap.Logger

	jwksOnce sync.Once
	jwks     *keyfunc.JWKS
	jwksErr  error
}

func newAppleProvider(cfg *config.Config, logger *zap.Logger) *appleProvider {
	return &appleProvider{cfg: cfg, logger: logger.Named("AppleProvider")}
}

func (p *appleProvider) Name() string { return ProviderApple }

func (p *appleProvider) LoginURL(c *gin.Context) (string, error) {
	state, err := generateAndSetOAuthState(c, p.cfg)
	if err != nil {
		return "", err
	}
	nonce, err := generateAndSetOAuthNonce(c, p.cfg)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Add("client_id", p.cfg.AppleClientID)
	params.Add("redirect_uri", p.cfg.AppleRedirectURI)
	params.Add("response_type", "code id_token")
	params.Add("scope", "name")
	params.Add("response_mode", "form_post")
	params.Add("state", state)
	params.Add("nonce", nonce)
	return appleAuthURL + "?" + params.Encode(), nil
}

// appleClaims are the id_token claims this flow consumes.
type appleClaims struct {
	Nonce string `json:"nonce"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// appleUserForm is the one-time user payload Apple posts on first login.
type appleUserForm struct {
	Name struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
	Email string `json:"email"`
}

func (p *appleProvider) HandleCallback(c *gin.Context) (*Profile, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse apple callback form: %w", err)
	}
	if errParam := c.PostForm("error"); errParam != "" {
		return nil, fmt.Errorf("apple callback error: %s", errParam)
	}
	if err := verifyState(c, p.cfg, c.PostForm("state")); err != nil {
		return nil, err
	}

	idToken := c.PostForm("id_token")
	if idToken == "" {
		return nil, fmt.Errorf("apple callback missing id_token")
	}

	storedNonce, err := getOAuthCookie(c, p.cfg, p.cfg.OAuthNonceCookieName)
	if err != nil {
		return nil, fmt.Errorf("missing OAuth nonce cookie: %w", err)
	}

	claims, err := p.verifyIDToken(idToken, storedNonce)
	if err != nil {
		return nil, err
	}

	displayName := claims.Email
	if userJSON := c.PostForm("user"); userJSON != "" {
		var form appleUserForm
		if err := json.Unmarshal([]byte(userJSON), &form); err == nil {
			if name := strings.TrimSpace(form.Name.FirstName + " " + form.Name.LastName); name != "" {
				displayName = name
			}
		} else {
			p.logger.Warn("Failed to parse apple user form data", zap.Error(err))
		}
	}
	if displayName == "" {
		displayName = "Apple User"
	}

	p.logger.Info("Apple login resolved", zap.String("providerID", claims.Subject))
	return &Profile{
		Provider:    ProviderApple,
		ProviderID:  claims.Subject,
		DisplayName: displayName,
	}, nil
}

func (p *appleProvider) verifyIDToken(idToken, expectedNonce string) (*appleClaims, error) {
	p.jwksOnce.Do(func() {
		p.jwks, p.jwksErr = keyfunc.Get(appleJWKSURL, keyfunc.Options{
			RefreshInterval:  time.Hour,
			RefreshRateLimit: time.Minute,
		})
	})
	if p.jwksErr != nil {
		return nil, fmt.Errorf("failed to load apple JWKS: %w", p.jwksErr)
	}

	claims := &appleClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, p.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid apple id_token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("apple id_token failed validation")
	}
	if !claims.VerifyIssuer(appleIssuer, true) {
		return nil, fmt.Errorf("apple id_token has unexpected issuer %q", claims.Issuer)
	}
	if !claims.VerifyAudience(p.cfg.AppleClientID, true) {
		return nil, fmt.Errorf("apple id_token has unexpected audience")
	}
	if claims.Nonce != expectedNonce {
		return nil, fmt.Errorf("apple id_token nonce mismatch")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("apple id_token missing subject")
	}
	return claims, nil
}
