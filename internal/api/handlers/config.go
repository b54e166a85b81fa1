package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the current configuration (API key redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	cfg := h.config()
	if cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.ConfigResponse{
		Zone:     cfg.Zone,
		Options:  cfg.Options,
		Paths:    cfg.Paths,
		Commands: cfg.Commands,
		Verify:   cfg.Verify,
		Locale:   cfg.Locale,
		Logging:  cfg.Logging,
		API: models.APIConfigResponse{
			Enabled: cfg.API.Enabled,
			Host:    cfg.API.Host,
			Port:    cfg.API.Port,
		},
		Database: cfg.Database,
	})
}
