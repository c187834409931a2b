// File: internal/middleware/auth.go
package middleware

import (
	"context"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/config"
	"taskboard_backend/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey = "userID"
	// UserRoleKey is the context key for the authenticated user's role
	UserRoleKey = "userRole"
)

// SessionResolver turns a session token into the identity it was minted
// for. Implemented by auth.Service.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (userID int64, role string, ok bool)
}

// SessionAuth resolves the session cookie and, when valid, attaches the
// caller's ID and role to the request context. It never aborts: routes
// that require authentication layer RequireAuth on top.
func SessionAuth(resolver SessionResolver, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFromRequest(c, cfg)
		if token != "" {
			if userID, role, ok := resolver.ResolveSession(c.Request.Context(), token); ok {
				c.Set(UserIDKey, userID)
				c.Set(UserRoleKey, role)
				logger.Debug("Session resolved",
					zap.Int64("userID", userID),
					zap.String("role", role),
				)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests that did not resolve to a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserIDKey); !exists {
			common.RespondWithError(c, common.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose caller holds none of
// the allowed roles.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRoleFromContext(c)
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		common.RespondWithError(c, common.ErrForbidden)
	}
}

// GetUserIDFromContext retrieves the user ID from the Gin context.
// Returns 0 if no authenticated user is attached.
func GetUserIDFromContext(c *gin.Context) int64 {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0
	}
	userID, ok := val.(int64)
	if !ok {
		return 0
	}
	return userID
}

// GetUserRoleFromContext retrieves the user role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) string {
	val, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	role, ok := val.(string)
	if !ok {
		return ""
	}
	return role
}
