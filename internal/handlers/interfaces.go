package handlers

import (
	"github.com/josep-prog-lab/payment-platform/internal/models"
)

// IngestServiceInterface defines the contract for SMS ingestion
// This interface is used for dependency injection and testing
type IngestServiceInterface interface {
	Ingest(rawText string) (*models.ExtractionSummary, error)
}

// VerificationServiceInterface defines the contract for payment verification
// This interface is used for dependency injection and testing
type VerificationServiceInterface interface {
	Verify(req *models.VerifyRequest) (*models.VerificationOutcome, error)
}
