// File: internal/identity/facebook.go
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
	"golang.org/x/oauth2/facebook"
)

// facebookProfileURL is a variable so tests can point it at a stub server.
var facebookProfileURL = "https://graph.facebook.com/v19.0/me?fields=id,name"

type facebookProvider struct {
	cfg    *config.Config
	oauth  *oauth2.Config
	logger *zap.Logger
}

func newFacebookProvider(cfg *config.Config, logger *zap.Logger) *facebookProvider {
	return &facebookProvider{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.FacebookClientID,
			ClientSecret: cfg.FacebookClientSecret,
			RedirectURL:  cfg.FacebookRedirectURI,
			Scopes:       []string{"public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		logger: logger.Named("FacebookProvider"),
	}
}

func (p *facebookProvider) Name() string { return ProviderFacebook }

func (p *facebookProvider) LoginURL(c *gin.Context) (string, error) {
	state, err := generateAndSetOAuthState(c, p.cfg)
	if err != nil {
		return "", err
	}
	return p.oauth.AuthCodeURL(state), nil
}

func (p *facebookProvider) HandleCallback(c *gin.Context) (*Profile, error) {
	if errParam := c.Query("error"); errParam != "" {
		return nil, fmt.Errorf("facebook callback error: %s", errParam)
	}
	if err := verifyState(c, p.cfg, c.Query("state")); err != nil {
		return nil, err
	}

	code := c.Query("code")
	if code == "" {
		return nil, fmt.Errorf("facebook callback missing authorization code")
	}

	ctx := c.Request.Context()
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange facebook auth code: %w", err)
	}

	client := p.oauth.Client(ctx, token)
	resp, err := client.Get(facebookProfileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facebook profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("facebook profile request failed: status %d, body %s", resp.StatusCode, string(body))
	}

	var fbUser struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fbUser); err != nil {
		return nil, fmt.Errorf("failed to decode facebook profile: %w", err)
	}
	if fbUser.ID == "" {
		return nil, fmt.Errorf("facebook profile missing id")
	}

	p.logger.Info("Facebook login resolved", zap.String("providerID", fbUser.ID))
	return &Profile{
		Provider:    ProviderFacebook,
		ProviderID:  fbUser.ID,
		DisplayName: fbUser.Name,
	}, nil
}
