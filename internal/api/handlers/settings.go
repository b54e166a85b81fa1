package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/jroosing/autodns/internal/database"
	"github.com/jroosing/autodns/internal/zonegen"
)

const (
	sourceConfig   = "config"
	sourceDatabase = "database"
)

// currentInput returns the stored zone input, falling back to the config file.
func (h *Handler) currentInput() (zonegen.Input, string, error) {
	if h.db != nil {
		in, err := h.db.GetZoneSettings()
		if err == nil {
			return in, sourceDatabase, nil
		}
		if !errors.Is(err, database.ErrNotFound) {
			return zonegen.Input{}, "", err
		}
	}
	cfg := h.config()
	if cfg == nil {
		return zonegen.Input{}, "", errors.New("config unavailable")
	}
	return cfg.Input(), sourceConfig, nil
}

func applyOptions(dst *zonegen.Options, req *models.OptionsRequest) {
	if req == nil {
		return
	}
	if req.CreateBackups != nil {
		dst.CreateBackups = *req.CreateBackups
	}
	if req.RestartService != nil {
		dst.RestartService = *req.RestartService
	}
	if req.IncludeSamples != nil {
		dst.IncludeSamples = *req.IncludeSamples
	}
}

// GetSettings godoc
// @Summary Get zone settings
// @Description Returns the IP address, domain and options used for generation
// @Tags settings
// @Produce json
// @Success 200 {object} models.SettingsResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	in, source, err := h.currentInput()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SettingsResponse{
		IPAddress: in.IPAddress,
		Domain:    in.Domain,
		Options:   in.Options,
		Source:    source,
	})
}

// PutSettings godoc
// @Summary Replace zone settings
// @Description Validates and stores the IP address, domain and options
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body models.SettingsRequest true "Zone settings"
// @Success 200 {object} models.SettingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [put]
func (h *Handler) PutSettings(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
		return
	}

	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := zonegen.Validate(req.IPAddress, req.Domain); err != nil {
		h.respondError(c, err)
		return
	}

	current, _, err := h.currentInput()
	if err != nil {
		h.respondError(c, err)
		return
	}
	in := zonegen.Input{IPAddress: req.IPAddress, Domain: req.Domain, Options: current.Options}
	applyOptions(&in.Options, req.Options)

	if err := h.db.SaveZoneSettings(in); err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Info("zone settings updated", "domain", in.Domain, "ip", in.IPAddress)

	c.JSON(http.StatusOK, models.SettingsResponse{
		IPAddress: in.IPAddress,
		Domain:    in.Domain,
		Options:   in.Options,
		Source:    sourceDatabase,
	})
}

// Derive godoc
// @Summary Derive reverse names
// @Description Returns the reverse zone, PTR owner and network prefix for an IPv4 address
// @Tags zones
// @Produce json
// @Param ip query string true "IPv4 address"
// @Success 200 {object} models.DeriveResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /derive [get]
func (h *Handler) Derive(c *gin.Context) {
	ip := c.Query("ip")
	if err := zonegen.ValidateIP(ip); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeriveResponse{IPAddress: ip, Derived: zonegen.Derive(ip)})
}
