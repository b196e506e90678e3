package services

import (
	"strings"

	"github.com/josep-prog-lab/payment-platform/internal/classifier"
	"github.com/josep-prog-lab/payment-platform/internal/db"
	"github.com/josep-prog-lab/payment-platform/internal/models"
	"github.com/josep-prog-lab/payment-platform/pkg/apperrors"
)

// IngestService classifies forwarded SMS text and persists one inbound
// message row per distinct message.
type IngestService struct {
	messages   db.MessageRepository
	classifier *classifier.Classifier
}

// NewIngestService creates a new ingest service
func NewIngestService(messages db.MessageRepository, c *classifier.Classifier) *IngestService {
	return &IngestService{messages: messages, classifier: c}
}

// Ingest classifies rawText and stores it. Non-payment texts are stored
// too, marked as such, so ambiguous forwarded traffic is never silently
// dropped and can be reclassified offline. Re-ingesting a message that is
// byte-identical, or that carries an already-stored txid, returns the
// stored record's summary with Duplicate set instead of writing a second
// row.
func (s *IngestService) Ingest(rawText string) (*models.ExtractionSummary, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, apperrors.Validation("message is required")
	}

	existing, err := s.messages.FindByRawText(rawText)
	if err != nil {
		return nil, apperrors.Storage("failed to check for duplicate message", err)
	}
	if existing != nil {
		return summaryFromMessage(existing, true), nil
	}

	result := s.classifier.Classify(rawText)

	if result.Fields.TxID != nil {
		existing, err = s.messages.FindByTxID(*result.Fields.TxID)
		if err != nil {
			return nil, apperrors.Storage("failed to check for duplicate transaction", err)
		}
		if existing != nil {
			// Different text, same txid: first write wins
			return summaryFromMessage(existing, true), nil
		}
	}

	msg := &models.InboundMessage{
		RawText:           rawText,
		TxID:              result.Fields.TxID,
		Amount:            result.Fields.Amount,
		SenderName:        result.Fields.SenderName,
		Timestamp:         result.Fields.Timestamp,
		SenderPhoneDigits: result.Fields.PhoneDigits,
		MLConfidence:      result.Confidence,
		PaymentStatus:     result.Status,
		IsPaymentSMS:      result.IsPaymentSMS,
	}

	if err := s.messages.Append(msg); err != nil {
		return nil, apperrors.Storage("failed to persist message", err)
	}

	return summaryFromMessage(msg, false), nil
}

func summaryFromMessage(msg *models.InboundMessage, duplicate bool) *models.ExtractionSummary {
	return &models.ExtractionSummary{
		IsPaymentSMS: msg.IsPaymentSMS,
		Status:       msg.PaymentStatus,
		Confidence:   msg.MLConfidence,
		Extracted: models.ExtractedFields{
			TxID:        msg.TxID,
			Amount:      msg.Amount,
			SenderName:  msg.SenderName,
			PhoneDigits: msg.SenderPhoneDigits,
			Timestamp:   msg.Timestamp,
		},
		Duplicate: duplicate,
	}
}
