// File: internal/user/handler.go
package user

import (
	"net/http"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("UserHandler")}
}

// RegisterRoutes sets up the routes for user operations on the /api group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW, adminRoleMW gin.HandlerFunc) {
	// Deliberately unauthenticated: clients probe it to decide whether to
	// show the login screen.
	api.GET("/user", h.getCurrentUser)
	api.GET("/users", authMW, adminRoleMW, h.listUsers)
}

// getCurrentUser returns the logged-in user, or JSON null when the request
// carries no valid session.
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}
	usr, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		// A session pointing at a missing user means the store was reset
		// under a live cookie; treat it as logged out.
		h.logger.Warn("Session resolved to unknown user", zap.Int64("userID", userID))
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// listUsers returns every user. Reachable only through the admin role gate.
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
