package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/josep-prog-lab/payment-platform/internal/classifier"
	"github.com/josep-prog-lab/payment-platform/internal/config"
	"github.com/josep-prog-lab/payment-platform/internal/db"
	"github.com/josep-prog-lab/payment-platform/internal/handlers"
	"github.com/josep-prog-lab/payment-platform/internal/matching"
	"github.com/josep-prog-lab/payment-platform/internal/services"
	"github.com/josep-prog-lab/payment-platform/pkg/logger"
	"github.com/josep-prog-lab/payment-platform/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const version = "1.0.0"

// SetupServer initializes and returns a configured HTTP server
func SetupServer(cfg *config.Config) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if cfg.Server.Port <= 0 {
		return nil, errors.New("invalid server port")
	}

	// Initialize database
	database, err := db.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	messageRepo := db.NewMessageRepository(database.GetDB())
	paymentRepo := db.NewPaymentRepository(database.GetDB())

	// Initialize services
	ingestService := services.NewIngestService(messageRepo, classifier.New())

	requiredAmount, err := parseRequiredAmount(cfg.Verification.RequiredAmount)
	if err != nil {
		return nil, err
	}
	verificationService := services.NewVerificationService(
		messageRepo,
		paymentRepo,
		matching.NewTokenSetMatcher(),
		cfg.Verification.NameSimilarityThreshold,
		requiredAmount,
	)

	// Initialize router
	router := gin.Default()
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	loadTemplates(router, cfg.Server.TemplatesGlob)

	// Setup routes
	setupRoutes(router, ingestService, verificationService)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return srv, nil
}

// parseRequiredAmount parses the optional service-wide expected amount.
func parseRequiredAmount(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid required amount %q: %w", raw, err)
	}
	return &amount, nil
}

// loadTemplates loads the verification page templates when present. The
// glob is optional so API-only deployments and tests run without the
// template directory.
func loadTemplates(router *gin.Engine, glob string) {
	if glob == "" {
		return
	}

	matches, err := filepath.Glob(glob)
	if err != nil || len(matches) == 0 {
		logger.Warn("No HTML templates found", zap.String("glob", glob))
		return
	}

	router.LoadHTMLGlob(glob)
}

// setupRoutes configures all the HTTP routes
func setupRoutes(
	router *gin.Engine,
	ingestService *services.IngestService,
	verificationService *services.VerificationService,
) {
	// Initialize handlers
	smsHandler := handlers.NewSMSHandler(ingestService)
	verifyHandler := handlers.NewVerifyHandler(verificationService)

	// Basic health check endpoint
	router.GET("/health", handleHealthCheck)

	// SMS ingestion endpoint, called by the forwarding app
	router.POST("/receive-sms", smsHandler.ReceiveSMS)

	// Payer self-verification page
	router.GET("/verify-payment-web", verifyHandler.ShowForm)
	router.POST("/verify-payment-web", verifyHandler.Verify)
}

// handleHealthCheck handles the health check endpoint
func handleHealthCheck(c *gin.Context) {
	logger.Info("Health check endpoint called")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "payment-platform",
	})
}

// StartServer starts the HTTP server and handles graceful shutdown
func StartServer(srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// StartServerWithContext starts the HTTP server with a context for shutdown control
func StartServerWithContext(ctx context.Context, srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
