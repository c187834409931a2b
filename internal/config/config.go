// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Frontend shell served on the catch-all route.
	StaticDir string `mapstructure:"STATIC_DIR"`
	// AppRootURL is where browsers land after login, logout, or a failed
	// provider handshake.
	AppRootURL string `mapstructure:"APP_ROOT_URL"`

	// Session Configuration
	SessionCookieName    string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL_MINUTES"`
	SessionCookieDomain  string        `mapstructure:"SESSION_COOKIE_DOMAIN"`
	SessionCookieSecure  bool          `mapstructure:"SESSION_COOKIE_SECURE"`
	SessionSweepSchedule string        `mapstructure:"SESSION_SWEEP_SCHEDULE"`

	// OAuth state/nonce cookies (CSRF protection during the handshake)
	OAuthStateCookieName     string `mapstructure:"OAUTH_STATE_COOKIE_NAME"`
	OAuthNonceCookieName     string `mapstructure:"OAUTH_NONCE_COOKIE_NAME"`
	OAuthCookieMaxAgeMinutes int    `mapstructure:"OAUTH_COOKIE_MAX_AGE_MINUTES"`
	OAuthCookieDomain        string `mapstructure:"OAUTH_COOKIE_DOMAIN"`
	OAuthCookieSecure        bool   `mapstructure:"OAUTH_COOKIE_SECURE"`
	OAuthCookieHTTPOnly      bool   `mapstructure:"OAUTH_COOKIE_HTTP_ONLY"`
	OAuthCookieSameSite      string `mapstructure:"OAUTH_COOKIE_SAME_SITE"`

	// Google OAuth
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`

	// Facebook OAuth
	FacebookClientID     string `mapstructure:"FACEBOOK_CLIENT_ID"`
	FacebookClientSecret string `mapstructure:"FACEBOOK_CLIENT_SECRET"`
	FacebookRedirectURI  string `mapstructure:"FACEBOOK_REDIRECT_URI"`

	// Apple Sign-In. The callback posts a signed id_token, so only the
	// client (services) ID and redirect URI are needed; no code exchange.
	AppleClientID    string `mapstructure:"APPLE_CLIENT_ID"`
	AppleRedirectURI string `mapstructure:"APPLE_REDIRECT_URI"`
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults for everything not explicitly set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("STATIC_DIR", "./public")
	v.SetDefault("APP_ROOT_URL", "/")

	v.SetDefault("SESSION_COOKIE_NAME", "taskboard_session")
	v.SetDefault("SESSION_TTL_MINUTES", 60*24)
	v.SetDefault("SESSION_COOKIE_DOMAIN", "")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_SWEEP_SCHEDULE", "@hourly")

	v.SetDefault("OAUTH_STATE_COOKIE_NAME", "oauth_state")
	v.SetDefault("OAUTH_NONCE_COOKIE_NAME", "oauth_nonce")
	v.SetDefault("OAUTH_COOKIE_MAX_AGE_MINUTES", 10)
	v.SetDefault("OAUTH_COOKIE_DOMAIN", "")
	v.SetDefault("OAUTH_COOKIE_SECURE", false)
	v.SetDefault("OAUTH_COOKIE_HTTP_ONLY", true)
	v.SetDefault("OAUTH_COOKIE_SAME_SITE", "Lax")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:3000/auth/google/callback")

	v.SetDefault("FACEBOOK_CLIENT_ID", "")
	v.SetDefault("FACEBOOK_CLIENT_SECRET", "")
	v.SetDefault("FACEBOOK_REDIRECT_URI", "http://localhost:3000/auth/facebook/callback")

	v.SetDefault("APPLE_CLIENT_ID", "")
	v.SetDefault("APPLE_REDIRECT_URI", "http://localhost:3000/auth/apple/callback")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Duration fields are configured as plain integers.
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.SessionTTL = time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute

	return &cfg, nil
}
