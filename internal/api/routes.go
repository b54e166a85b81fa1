package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/handlers"
	"github.com/jroosing/autodns/internal/api/middleware"
	"github.com/jroosing/autodns/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/autodns/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.GET("/config", h.GetConfig)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.PutSettings)

	api.GET("/derive", h.Derive)
	api.POST("/zones/preview", h.PreviewZones)
	api.POST("/zones/apply", h.ApplyZones)

	api.GET("/generations", h.ListGenerations)
	api.GET("/generations/:id", h.GetGeneration)
}
