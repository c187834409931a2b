// File: internal/task/service.go
package task

import (
	"strings"

	"taskboard_backend/internal/common"
	"taskboard_backend/internal/user"

	"go.uber.org/zap"
)

// Service applies the access policy in front of the store. Handlers never
// touch the store directly.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new task service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger.Named("TaskService")}
}

// ListFor returns the tasks visible to the caller, in insertion order.
func (s *Service) ListFor(caller *user.User) []Task {
	return VisibleTo(caller, s.store.List())
}

// Create validates the payload and stores a new task owned by the caller.
func (s *Service) Create(caller *user.User, req CreateTaskRequest) (Task, error) {
	if strings.TrimSpace(req.Text) == "" ||
		strings.TrimSpace(req.Type) == "" ||
		strings.TrimSpace(req.Period) == "" {
		return Task{}, common.ErrTaskFieldsRequired
	}
	t := s.store.Create(req.Text, req.Type, req.Period, caller.ID)
	s.logger.Info("Task created",
		zap.Int64("taskID", t.ID),
		zap.Int64("owner", caller.ID),
	)
	return t, nil
}

// SetCompleted overwrites the completion flag of a task. Unknown IDs fail
// with not-found regardless of caller role; known tasks the caller may not
// modify fail with forbidden, unchanged.
func (s *Service) SetCompleted(caller *user.User, id int64, completed bool) (Task, error) {
	existing, ok := s.store.Get(id)
	if !ok {
		return Task{}, common.ErrTaskNotFound
	}
	if !CanModify(caller, existing) {
		return Task{}, common.ErrForbidden
	}
	updated, ok := s.store.SetCompleted(id, completed)
	if !ok {
		return Task{}, common.ErrTaskNotFound
	}
	return updated, nil
}

// Delete removes a task. Deleting an absent ID reports success so callers
// cannot probe for the existence of another owner's task; the forbidden
// check still runs first when the task exists.
func (s *Service) Delete(caller *user.User, id int64) error {
	existing, ok := s.store.Get(id)
	if ok && !CanModify(caller, existing) {
		return common.ErrForbidden
	}
	if s.store.Delete(id) {
		s.logger.Info("Task deleted",
			zap.Int64("taskID", id),
			zap.Int64("caller", caller.ID),
		)
	}
	return nil
}
