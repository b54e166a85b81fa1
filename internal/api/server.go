// Package api provides the REST management API for AutoDNS.
// It exposes endpoints for health checks, statistics, configuration,
// zone settings, zone preview/apply and generation history via a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/handlers"
	"github.com/jroosing/autodns/internal/api/middleware"
	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/database"
)

// Server is the management REST API server.
//
// Security note: POST /zones/apply writes BIND configuration. Do not expose the
// API to untrusted networks without an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	handler    *handlers.Handler
	httpServer *http.Server
}

// New builds the server. db may be nil; history and PUT /settings are then unavailable.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, db, logger)
	RegisterRoutes(engine, h, cfg)

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Apply may wait on named-checkzone and a service restart.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, handler: h, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler exposes the handler set so callers can attach an applier or swap config.
func (s *Server) Handler() *handlers.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
