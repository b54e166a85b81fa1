package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/jroosing/autodns/internal/database"
)

// ListGenerations godoc
// @Summary List generations
// @Description Returns stored zone generations, newest first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {object} models.GenerationListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /generations [get]
func (h *Handler) ListGenerations(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	gens, err := h.db.ListGenerations(limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.GenerationListResponse{Generations: gens, Count: len(gens)})
}

// GetGeneration godoc
// @Summary Get generation
// @Description Returns one stored generation including the rendered texts
// @Tags history
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} database.Generation
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /generations/{id} [get]
func (h *Handler) GetGeneration(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable"})
		return
	}

	g, err := h.db.GetGeneration(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "generation not found"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}
