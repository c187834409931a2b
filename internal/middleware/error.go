// File: internal/middleware/error.go
package middleware

import (
	"taskboard_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a safety net for errors that handlers attached via
// c.Error instead of responding directly. APIErrors keep their status and
// wire message; anything else becomes a generic 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		if apiErr, ok := common.IsAPIError(ginErr.Err); ok {
			c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
			return
		}

		logger.Error("Unhandled application error",
			zap.Error(ginErr.Err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDContextKey)),
		)
		c.AbortWithStatusJSON(common.ErrInternalServer.StatusCode, common.ErrInternalServer)
	}
}
