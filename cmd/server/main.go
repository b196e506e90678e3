package main

import (
	"os"

	"github.com/josep-prog-lab/payment-platform/internal/config"
	"github.com/josep-prog-lab/payment-platform/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.DefaultConfig()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	// Fail fast on incomplete configuration
	if err := cfg.Resolve(); err != nil {
		logger.Fatal("Configuration error", zap.Error(err))
		return
	}

	// Setup and start server
	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
		return
	}

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
