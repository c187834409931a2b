//go:build wireinject
// +build wireinject

// File: cmd/server/wire.go
package main

import (
	"taskboard_backend/internal/app"
	"taskboard_backend/internal/auth"
	"taskboard_backend/internal/config"
	"taskboard_backend/internal/identity"
	"taskboard_backend/internal/jobs"
	"taskboard_backend/internal/platform/logger"
	"taskboard_backend/internal/session"
	"taskboard_backend/internal/task"
	"taskboard_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer builds the full application graph from configuration.
// Run `go generate ./...` (or `wire ./cmd/server`) after changing providers.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		logger.New,
		session.NewStore,
		user.NewMemoryRepository,
		user.NewService,
		user.NewHandler,
		identity.NewRegistry,
		auth.NewService,
		auth.NewHandler,
		task.NewStore,
		task.NewService,
		task.NewHandler,
		jobs.NewSessionSweepJob,
		app.NewServer,
		provideCleanup,
	)
	return nil, nil, nil
}
