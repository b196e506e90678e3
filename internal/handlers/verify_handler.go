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

const verifyTemplate = "verify_payment.html"

// VerifyHandler handles the payer self-verification page
type VerifyHandler struct {
	verificationService VerificationServiceInterface
}

// NewVerifyHandler creates a new verification handler
func NewVerifyHandler(verificationService VerificationServiceInterface) *VerifyHandler {
	return &VerifyHandler{
		verificationService: verificationService,
	}
}

// ShowForm handles GET /verify-payment-web
func (h *VerifyHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, verifyTemplate, gin.H{})
}

// Verify handles POST /verify-payment-web
// Accepts a form submission or a JSON body and answers in kind: HTML for
// the browser, JSON for API clients.
func (h *VerifyHandler) Verify(c *gin.Context) {
	logger.Info("Verify payment endpoint called")

	wantsJSON := strings.Contains(c.ContentType(), "application/json")

	var req models.VerifyRequest
	var err error
	if wantsJSON {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBind(&req)
	}
	if err != nil {
		logger.Warn("Invalid verification request", zap.Error(err))
		h.respondError(c, wantsJSON, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, err := h.verificationService.Verify(&req)
	if err != nil {
		logger.Warn("Verification rejected",
			zap.String("txid", req.TxID),
			zap.Error(err),
		)
		h.respondError(c, wantsJSON, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
		return
	}

	logger.Info("Verification outcome",
		zap.String("txid", req.TxID),
		zap.Bool("matched", outcome.Matched),
		zap.String("reason", string(outcome.Reason)),
	)

	if wantsJSON {
		c.JSON(http.StatusOK, outcome)
		return
	}

	resultStatus := "not_approved"
	if outcome.Matched {
		resultStatus = "approved"
	}

	c.HTML(http.StatusOK, verifyTemplate, gin.H{
		"ResultMessage":  outcome.Message,
		"ResultStatus":   resultStatus,
		"VerifiedAmount": outcome.VerifiedAmount,
	})
}

func (h *VerifyHandler) respondError(c *gin.Context, wantsJSON bool, status int, message string) {
	if wantsJSON {
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.HTML(status, verifyTemplate, gin.H{
		"ResultMessage": message,
		"ResultStatus":  "not_approved",
	})
}
