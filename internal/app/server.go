// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskboard_backend/internal/auth"
	"taskboard_backend/internal/common"
	"taskboard_backend/internal/config"
	"taskboard_backend/internal/jobs"
	"taskboard_backend/internal/middleware"
	"taskboard_backend/internal/task"
	"taskboard_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	taskHandler *task.Handler
	userHandler *user.Handler
	authHandler *auth.Handler

	// Jobs
	sessionSweepJob *jobs.SessionSweepJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authService *auth.Service,
	taskHandler *task.Handler,
	userHandler *user.Handler,
	authHandler *auth.Handler,
	sessionSweepJob *jobs.SessionSweepJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Every request resolves its session cookie once; the auth and role
	// gates below only inspect what SessionAuth attached.
	router.Use(middleware.SessionAuth(authService, cfg, logger.Named("SessionAuth")))
	authMW := middleware.RequireAuth()
	adminRoleMW := middleware.RequireRole(common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	api := router.Group("/api")
	taskHandler.RegisterRoutes(api, authMW)
	userHandler.RegisterRoutes(api, authMW, adminRoleMW)

	authHandler.RegisterRoutes(router.Group("/auth"), authMW)

	registerSPAFallback(router, cfg)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:      httpServer,
		router:          router,
		cfg:             cfg,
		logger:          logger,
		taskHandler:     taskHandler,
		userHandler:     userHandler,
		authHandler:     authHandler,
		sessionSweepJob: sessionSweepJob,
	}, nil
}

// registerSPAFallback serves the single-page app shell for anything that
// is not an API or auth route: static assets when the requested file
// exists, index.html for everything else so client-side routing works.
func registerSPAFallback(router *gin.Engine, cfg *config.Config) {
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/auth") {
			c.AbortWithStatusJSON(common.ErrNotFound.StatusCode, common.ErrNotFound)
			return
		}
		if c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(common.ErrNotFound.StatusCode, common.ErrNotFound)
			return
		}
		file := filepath.Join(cfg.StaticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})
}

// Router exposes the underlying gin engine for integration tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	if s.sessionSweepJob != nil {
		if err := s.sessionSweepJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start session sweep job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.sessionSweepJob != nil {
		s.sessionSweepJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
