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

	"github.com/gin-gonic/gin"
	"github.com/neuroatlas/neuroquery/internal/config"
	"github.com/neuroatlas/neuroquery/internal/database"
	"github.com/neuroatlas/neuroquery/internal/handlers"
	"github.com/neuroatlas/neuroquery/internal/services"
	"github.com/neuroatlas/neuroquery/internal/storage"
	"github.com/neuroatlas/neuroquery/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Initialize database
	db, err := database.Get(context.Background(), cfg.Database.URL)
	if err != nil {
		logger.Error("failed to initialize database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	// Initialize storage (optional; /img falls back to the local asset)
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err.Error())
		os.Exit(1)
	}

	// Initialize services
	studyService := services.NewStudyService(db.Pool, cfg.Database.SRID)
	diagnosticsService := services.NewDiagnosticsService(db.Pool)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.Image.Path)
	studyHandler := handlers.NewStudyHandler(studyService)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(diagnosticsService)

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(healthHandler, studyHandler, diagnosticsHandler, cfg.Server.CORSOrigin)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("query server starting", "addr", srv.Addr, "srid", cfg.Database.SRID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err.Error())
	}
	logger.Info("server stopped")
}
