// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"

	"taskboard_backend/internal/common"

	"go.uber.org/zap"
)

// Service implements the identity resolver: it maps an external provider
// identity onto a stable internal user record, creating one on first sight.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger.Named("UserService")}
}

// ResolveOrCreate looks up the user for a (provider, providerId) pair and
// creates one on first login. The first user ever created gets the admin
// role; everyone after gets the user role. The emptiness check and the
// insert are two separate repository calls, matching the original
// check-then-act behavior. An existing user's display name is not
// refreshed; the first-seen name sticks.
func (s *Service) ResolveOrCreate(ctx context.Context, provider, providerID, displayName string) (*User, bool, error) {
	existing, err := s.repo.FindByProvider(ctx, provider, providerID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user by provider identity: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count users: %w", err)
	}
	role := common.RoleUser
	if count == 0 {
		role = common.RoleAdmin
	}

	newUser := &User{
		Provider:    provider,
		ProviderID:  providerID,
		DisplayName: displayName,
		Role:        role,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("New user created from provider identity",
		zap.Int64("userID", newUser.ID),
		zap.String("provider", provider),
		zap.String("role", role),
	)
	return newUser, true, nil
}

// GetByID returns the user for an internal ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every user in creation order.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
