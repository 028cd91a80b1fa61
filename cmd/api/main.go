package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keyvan-m/nftlens/configs"
	"github.com/keyvan-m/nftlens/internal/analysis"
	"github.com/keyvan-m/nftlens/internal/handler"
	"github.com/keyvan-m/nftlens/internal/live"
	"github.com/keyvan-m/nftlens/internal/logging"
	"github.com/keyvan-m/nftlens/internal/middleware"
	"github.com/keyvan-m/nftlens/internal/router"
	"github.com/keyvan-m/nftlens/internal/service"
)

func main() {
	cfg := configs.AppLoad()
	logger := logging.NewLogger()

	generator := analysis.NewGenerator()
	analysisService := service.NewAnalysisService(generator, cfg.DefaultContract)
	analyzeHandler := handler.NewAnalyzeHandler(analysisService)

	liveManager := live.NewManager(
		time.Duration(cfg.Live.UpdateSeconds)*time.Second,
		generator,
		logger,
	)

	routerConfig := &router.Config{
		AnalyzeHandler: analyzeHandler,
		LiveManager:    liveManager,
		Limiter:        middleware.NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		DebugMode:      cfg.DebugMode == "True",
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router.NewRouter(routerConfig),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("API server listening on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal, gracefully shutting down...")

	liveManager.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
}
