package main

import (
	"context"
	"log"
	"net/http"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/mediamingle/backend/internal/metrics"
	"github.com/mediamingle/backend/internal/router"
	"github.com/mediamingle/backend/pkg/config"
	"github.com/mediamingle/backend/pkg/firebase"
	"github.com/mediamingle/backend/pkg/logger"
	"github.com/mediamingle/backend/validators"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connections
	db, err := config.InitDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Firebase backs only the optional federated login; skip it when not configured.
	var firebaseAuthClient *firebaseauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			zlog.Fatal("Failed to initialize Firebase", zap.Error(err))
		}
		firebaseAuthClient = firebaseApp.AuthClient
		zlog.Info("Firebase auth client initialized")
	}

	// Metrics registry and service counters
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	go func() {
		addr := ":" + cfg.MetricsPort
		zlog.Info("Serving metrics", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, metrics.Handler(registry)); err != nil {
			zlog.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, firebaseAuthClient, collector, zlog); err != nil {
		zlog.Fatal("Failed to set up routes", zap.Error(err))
	}

	// Start server
	zlog.Info("Starting server", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
