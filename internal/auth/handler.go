// File: internal/auth/handler.go
package auth

import (
	"net/http"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/config"
	"taskboard_backend/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	service *Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service *Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, cfg: cfg, logger: logger.Named("AuthHandler")}
}

// RegisterRoutes sets up the routes for authentication operations.
// Apple posts its callback (response_mode=form_post), the others redirect
// with a GET, so the callback route accepts both verbs.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.GET("/logout", authMW, h.logout)
	router.GET("/:provider", h.login)
	router.GET("/:provider/callback", h.callback)
	router.POST("/:provider/callback", h.callback)
}

// login redirects the browser into the provider's consent flow.
func (h *Handler) login(c *gin.Context) {
	provider, ok := h.service.Provider(c.Param("provider"))
	if !ok {
		common.RespondWithError(c, common.ErrNotFound)
		return
	}
	authURL, err := provider.LoginURL(c)
	if err != nil {
		h.logger.Error("Failed to build provider login URL",
			zap.String("provider", provider.Name()), zap.Error(err))
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// callback consumes the provider redirect, establishes the session, and
// sends the browser back to the app root. Provider failures also land on
// the app root: the UI re-probes /api/user and shows the login screen.
func (h *Handler) callback(c *gin.Context) {
	provider, ok := h.service.Provider(c.Param("provider"))
	if !ok {
		common.RespondWithError(c, common.ErrNotFound)
		return
	}

	profile, err := provider.HandleCallback(c)
	if err != nil {
		h.logger.Warn("OAuth callback failed",
			zap.String("provider", provider.Name()), zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, h.cfg.AppRootURL)
		return
	}

	token, err := h.service.Login(c.Request.Context(), profile)
	if err != nil {
		h.logger.Error("Failed to establish session after OAuth callback",
			zap.String("provider", provider.Name()), zap.Error(err))
		c.Redirect(http.StatusTemporaryRedirect, h.cfg.AppRootURL)
		return
	}

	session.SetCookie(c, h.cfg, token)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.AppRootURL)
}

// logout destroys the current session and clears the cookie.
func (h *Handler) logout(c *gin.Context) {
	token := session.TokenFromRequest(c, h.cfg)
	if err := h.service.Logout(token); err != nil {
		h.logger.Error("Failed to destroy session on logout", zap.Error(err))
		common.RespondWithError(c, common.ErrLogoutFailed)
		return
	}
	session.ClearCookie(c, h.cfg)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.AppRootURL)
}
