package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/veralum/veralum-backend/config"
	"github.com/veralum/veralum-backend/handlers"
	"github.com/veralum/veralum-backend/internal/store/catalog"
	"github.com/veralum/veralum-backend/logger"
	"github.com/veralum/veralum-backend/router"
	"github.com/veralum/veralum-backend/services"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalogStore, err := catalog.NewStore()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Services
	emailService := services.NewEmailService(&cfg.Email)
	healthService := services.NewHealthService(catalogStore, &cfg.Email, cfg.Server.Version)

	// Handlers
	contactHandler := handlers.NewContactHandler(emailService)
	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	healthHandler := handlers.NewHealthHandler(healthService)

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		ContactHandler: contactHandler,
		CatalogHandler: catalogHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
}
