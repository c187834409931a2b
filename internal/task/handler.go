// File: internal/task/handler.go
package task

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/middleware"
	"taskboard_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for task handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new task handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("TaskHandler")}
}

// RegisterRoutes sets up the task routes on the /api group. Every route
// requires an authenticated caller.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	tasks := api.Group("/tasks", authMW)
	{
		tasks.GET("", h.list)
		tasks.POST("", h.create)
		tasks.PUT("/:id", h.updateCompletion)
		tasks.DELETE("/:id", h.delete)
	}
}

// caller reconstructs the authenticated user from the request context.
// RequireAuth guarantees the ID is present on these routes.
func caller(c *gin.Context) *user.User {
	return &user.User{
		ID:   middleware.GetUserIDFromContext(c),
		Role: middleware.GetUserRoleFromContext(c),
	}
}

// taskID parses the :id parameter. Malformed IDs map to 0, which no task
// ever holds, so they fall through to the unknown-ID behavior of each
// operation (404 on update, idempotent 204 on delete).
func taskID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListFor(caller(c)))
}

func (h *Handler) create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create task: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.ErrTaskFieldsRequired)
			return
		}
		common.RespondWithError(c, common.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	t, err := h.service.Create(caller(c), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) updateCompletion(c *gin.Context) {
	var req UpdateTaskRequest
	// An absent body reads the same as {"completed": false}.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Update task: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	t, err := h.service.SetCompleted(caller(c), taskID(c), req.Completed)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(caller(c), taskID(c)); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
