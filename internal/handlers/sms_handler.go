package handlers

import (
	"net/http"
	"strings"

	"github.com/josep-prog-lab/payment-platform/internal/models"
	"github.com/josep-prog-lab/payment-platform/pkg/apperrors"
	"github.com/josep-prog-lab/payment-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SMSHandler handles inbound forwarded SMS
type SMSHandler struct {
	ingestService IngestServiceInterface
}

// NewSMSHandler creates a new SMS handler
func NewSMSHandler(ingestService IngestServiceInterface) *SMSHandler {
	return &SMSHandler{
		ingestService: ingestService,
	}
}

// ReceiveSMS handles POST /receive-sms
// Classifies the forwarded SMS text and stores one inbound message row.
// Storage failures are surfaced to the forwarding client so it can retry.
func (h *SMSHandler) ReceiveSMS(c *gin.Context) {
	logger.Info("Receive SMS endpoint called")

	var req models.ReceiveSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid receive-sms request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	summary, err := h.ingestService.Ingest(req.Message)
	if err != nil {
		logger.Error("Failed to ingest SMS", zap.Error(err))
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.MessageOf(err)})
		return
	}

	logger.Info("SMS ingested",
		zap.Bool("is_payment_sms", summary.IsPaymentSMS),
		zap.String("status", string(summary.Status)),
		zap.Float64("confidence", summary.Confidence),
		zap.Bool("duplicate", summary.Duplicate),
	)

	c.JSON(http.StatusOK, summary)
}
