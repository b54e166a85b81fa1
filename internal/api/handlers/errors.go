package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/jroosing/autodns/internal/zonegen"
)

// respondError maps rejected input to 400 and everything else to 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, zonegen.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Kind: "invalid_address"})
	case errors.Is(err, zonegen.ErrInvalidDomain):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Kind: "invalid_domain"})
	default:
		h.logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}
