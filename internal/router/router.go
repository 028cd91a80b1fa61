package router

import (
	"github.com/gin-gonic/gin"

	"github.com/keyvan-m/nftlens/internal/handler"
	"github.com/keyvan-m/nftlens/internal/live"
	"github.com/keyvan-m/nftlens/internal/middleware"
)

type Config struct {
	AnalyzeHandler *handler.AnalyzeHandler
	LiveManager    *live.Manager
	Limiter        *middleware.ClientLimiter
	DebugMode      bool
}

func NewRouter(cfg *Config) *gin.Engine {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	api := router.Group("/api")
	if cfg.Limiter != nil {
		api.Use(cfg.Limiter.Middleware())
	}
	registerAnalyzeRoutes(api, cfg.AnalyzeHandler)

	if cfg.LiveManager != nil {
		router.GET("/ws", cfg.LiveManager.Handler())
	}

	return router
}
