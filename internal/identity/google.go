// File: internal/identity/google.go
package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskboard_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// googleUserInfoURL is a variable so tests can point it at a stub server.
var googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

type googleProvider struct {
	cfg    *config.Config
	oauth  *oauth2.Config
	logger *zap.Logger
}

func newGoogleProvider(cfg *config.Config, logger *zap.Logger) *googleProvider {
	return &googleProvider{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{"openid", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger.Named("GoogleProvider"),
	}
}

func (p *googleProvider) Name() string { return ProviderGoogle }

func (p *googleProvider) LoginURL(c *gin.Context) (string, error) {
	state, err := generateAndSetOAuthState(c, p.cfg)
	if err != nil {
		return "", err
	}
	return p.oauth.AuthCodeURL(state), nil
}

func (p *googleProvider) HandleCallback(c *gin.Context) (*Profile, error) {
	if errParam := c.Query("error"); errParam != "" {
		return nil, fmt.Errorf("google callback error: %s", errParam)
	}
	if err := verifyState(c, p.cfg, c.Query("state")); err != nil {
		return nil, err
	}

	code := c.Query("code")
	if code == "" {
		return nil, fmt.Errorf("google callback missing authorization code")
	}

	ctx := c.Request.Context()
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange google auth code: %w", err)
	}

	client := p.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google user info request failed: status %d, body %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		Sub  string `json:"sub"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, fmt.Errorf("failed to decode google user info: %w", err)
	}
	if googleUser.Sub == "" {
		return nil, fmt.Errorf("google user info missing subject")
	}

	p.logger.Info("Google login resolved", zap.String("providerID", googleUser.Sub))
	return &Profile{
		Provider:    ProviderGoogle,
		ProviderID:  googleUser.Sub,
		DisplayName: googleUser.Name,
	}, nil
}
