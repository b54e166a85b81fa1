// Package handlers implements the REST API endpoint handlers for AutoDNS.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, host, history counts)
//   - GET /api/v1/config - Current configuration (sensitive values redacted)
//
// Zone input:
//   - GET /api/v1/settings - Stored IP address, domain and options
//   - PUT /api/v1/settings - Replace the stored zone input
//   - GET /api/v1/derive?ip= - Reverse zone names derived from an address
//
// Zones:
//   - POST /api/v1/zones/preview - Render forward/reverse zones and the named.conf.local snippet
//   - POST /api/v1/zones/apply - Render, write, verify and restart BIND
//
// History:
//   - GET /api/v1/generations - Stored generations, newest first
//   - GET /api/v1/generations/:id - One stored generation
//
// Authentication:
//
// All endpoints support optional API key authentication via the X-API-Key
// header. If an API key is configured it is required for every endpoint.
//
// Security Considerations:
//
// - API is bound to localhost:8080 by default (not exposed to network)
// - POST /zones/apply writes into the BIND directory and restarts the service
// - Use strong API keys (minimum 32 characters recommended)
//
// @title AutoDNS Management API
// @version 1.0
// @description REST API for generating and applying BIND9 forward and reverse zones.
//
// @contact.name AutoDNS Support
// @contact.url https://github.com/jroosing/autodns
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/autodns/internal/bind"
	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/database"
	"github.com/jroosing/autodns/internal/zonegen"
)

// Applier writes generated artifacts into place. *bind.Applier satisfies it.
type Applier interface {
	Apply(ctx context.Context, art *zonegen.Artifacts) (*bind.ApplyReport, error)
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time

	applier Applier
	mu      sync.RWMutex
}

// New creates a new Handler with the given configuration and database.
// db may be nil, in which case settings come from cfg and no history is kept.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}

// SetApplier sets the collaborator used by POST /zones/apply.
func (h *Handler) SetApplier(a Applier) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applier = a
}

// GetApplier retrieves the applier with safe read access.
func (h *Handler) GetApplier() Applier {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.applier
}

// SetConfig swaps the configuration, e.g. after the config file changed on disk.
func (h *Handler) SetConfig(cfg *config.Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
}

func (h *Handler) config() *config.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}
