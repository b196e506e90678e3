package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josep-prog-lab/payment-platform/pkg/logger"

	"go.uber.org/zap"
)

// EnvDatabaseDSN overrides the configured database DSN when set.
const EnvDatabaseDSN = "PAYMENT_DB_DSN"

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port          int    `json:"port"`
		Host          string `json:"host"`
		TemplatesGlob string `json:"templates_glob"`
	} `json:"server"`
	Database struct {
		DSN string `json:"dsn"`
	} `json:"database"`
	Verification struct {
		NameSimilarityThreshold float64 `json:"name_similarity_threshold"`
		// RequiredAmount, when non-empty, is an expected amount every
		// verification must match; empty disables the check.
		RequiredAmount string `json:"required_amount"`
	} `json:"verification"`
	Logging struct {
		Level string `json:"level"`
		Path  string `json:"path"`
	} `json:"logging"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	// Check if file exists and is a regular file
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.Host = "localhost"
	config.Server.TemplatesGlob = "web/templates/*.html"
	config.Database.DSN = "file:payments.db?cache=shared&mode=rwc"
	config.Verification.NameSimilarityThreshold = 0.7
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	return config
}

// Resolve applies environment overrides and enforces required settings.
// A missing database DSN is a configuration error; the caller is expected
// to fail fast on it.
func (c *Config) Resolve() error {
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		c.Database.DSN = dsn
	}

	if c.Database.DSN == "" {
		return errors.New("database DSN is not configured: set " + EnvDatabaseDSN + " or database.dsn")
	}

	if c.Verification.NameSimilarityThreshold <= 0 || c.Verification.NameSimilarityThreshold > 1 {
		return fmt.Errorf("name similarity threshold must be in (0,1], got %v", c.Verification.NameSimilarityThreshold)
	}

	return nil
}
