package services

import (
	"fmt"
	"strings"

	"github.com/josep-prog-lab/payment-platform/internal/db"
	"github.com/josep-prog-lab/payment-platform/internal/matching"
	"github.com/josep-prog-lab/payment-platform/internal/models"
	"github.com/josep-prog-lab/payment-platform/pkg/apperrors"

	"github.com/shopspring/decimal"
)

// The one client-facing wording for a failed sub-check. Which check failed
// is deliberately not disclosed, to avoid aiding trial-and-error guessing;
// the machine-readable reason stays "mismatch".
const mismatchMessage = "Provided details do not match our records."

// VerificationService matches a payer's claim against stored inbound
// messages and records successful verifications.
type VerificationService struct {
	messages       db.MessageRepository
	payments       db.PaymentRepository
	matcher        matching.NameMatcher
	nameThreshold  float64
	requiredAmount *decimal.Decimal
}

// NewVerificationService creates a new verification service. requiredAmount
// is an optional service-wide expected amount; nil disables the amount
// check unless the request supplies one.
func NewVerificationService(
	messages db.MessageRepository,
	payments db.PaymentRepository,
	matcher matching.NameMatcher,
	nameThreshold float64,
	requiredAmount *decimal.Decimal,
) *VerificationService {
	return &VerificationService{
		messages:       messages,
		payments:       payments,
		matcher:        matcher,
		nameThreshold:  nameThreshold,
		requiredAmount: requiredAmount,
	}
}

// Verify evaluates the matching rule for one claim. Negative results
// (not found, not confirmed, mismatch) are outcomes, not errors; the error
// return is reserved for invalid input and storage failures.
func (s *VerificationService) Verify(req *models.VerifyRequest) (*models.VerificationOutcome, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	msg, err := s.messages.FindByTxID(strings.TrimSpace(req.TxID))
	if err != nil {
		return nil, apperrors.Storage("failed to look up transaction", err)
	}
	if msg == nil {
		return &models.VerificationOutcome{
			Reason:  models.ReasonNotFound,
			Message: "Payment not found. Please check your TxID.",
		}, nil
	}

	// Only success-status messages can ever verify
	if msg.PaymentStatus != models.StatusSuccess {
		return &models.VerificationOutcome{
			Reason:  models.ReasonNotConfirmed,
			Message: "Payment is not confirmed.",
		}, nil
	}

	paidAmount, ok := normalizeAmount(msg.Amount)
	if !ok {
		return &models.VerificationOutcome{
			Reason:  models.ReasonNotConfirmed,
			Message: "Payment is not confirmed.",
		}, nil
	}

	if outcome := s.checkName(req, msg); outcome != nil {
		return outcome, nil
	}

	if outcome := s.checkPhoneSuffix(req, msg); outcome != nil {
		return outcome, nil
	}

	outcome, err := s.checkAmount(req, paidAmount)
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return outcome, nil
	}

	stored, err := s.payments.Upsert(&models.VerifiedPayment{
		TxID:           strings.TrimSpace(req.TxID),
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientPhone:    strings.TrimSpace(req.ClientPhone),
		VerifiedAmount: paidAmount.IntPart(),
	})
	if err != nil {
		return nil, apperrors.Storage("failed to record payment verification", err)
	}

	return &models.VerificationOutcome{
		Matched:        true,
		Reason:         models.ReasonMatched,
		Message:        fmt.Sprintf("Payment verified successfully! Amount received: %d RWF", stored.VerifiedAmount),
		VerifiedAmount: &stored.VerifiedAmount,
		Timestamp:      msg.Timestamp,
	}, nil
}

func (s *VerificationService) validate(req *models.VerifyRequest) error {
	if req == nil {
		return apperrors.Validation("request body is required")
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return apperrors.Validation("client name is required")
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return apperrors.Validation("client phone is required")
	}

	txid := strings.TrimSpace(req.TxID)
	if txid == "" {
		return apperrors.Validation("txid is required")
	}

	if !models.ValidTxID(txid) {
		return apperrors.Validation("txid must be alphanumeric, 4 to 32 characters")
	}

	return nil
}

func (s *VerificationService) checkName(req *models.VerifyRequest, msg *models.InboundMessage) *models.VerificationOutcome {
	if msg.SenderName == nil {
		return mismatch()
	}

	if s.matcher.Similarity(req.ClientName, *msg.SenderName) < s.nameThreshold {
		return mismatch()
	}

	return nil
}

// checkPhoneSuffix compares the claim's trailing digits against the stored
// masked suffix. Messages without a stored suffix skip the check, matching
// the provider formats that omit the parenthetical.
func (s *VerificationService) checkPhoneSuffix(req *models.VerifyRequest, msg *models.InboundMessage) *models.VerificationOutcome {
	if msg.SenderPhoneDigits == nil || *msg.SenderPhoneDigits == "" {
		return nil
	}

	clientDigits := digitsOnly(req.ClientPhone)
	if clientDigits == "" || !strings.HasSuffix(clientDigits, *msg.SenderPhoneDigits) {
		return mismatch()
	}

	return nil
}

func (s *VerificationService) checkAmount(req *models.VerifyRequest, paid decimal.Decimal) (*models.VerificationOutcome, error) {
	expected := s.requiredAmount

	if strings.TrimSpace(req.ExpectedAmount) != "" {
		parsed, ok := normalizeAmount(&req.ExpectedAmount)
		if !ok {
			return nil, apperrors.Validation("expected amount must be a number")
		}
		expected = &parsed
	}

	if expected == nil {
		return nil, nil
	}

	if paid.LessThan(*expected) {
		shortage := expected.Sub(paid)
		return &models.VerificationOutcome{
			Reason:  models.ReasonMismatch,
			Message: fmt.Sprintf("Insufficient payment. You are short by %s RWF.", shortage.String()),
		}, nil
	}

	if !paid.Equal(*expected) {
		return mismatch(), nil
	}

	return nil, nil
}

func mismatch() *models.VerificationOutcome {
	return &models.VerificationOutcome{
		Reason:  models.ReasonMismatch,
		Message: mismatchMessage,
	}
}

// normalizeAmount parses a stored amount such as "7,000 RWF" or "1000".
func normalizeAmount(raw *string) (decimal.Decimal, bool) {
	if raw == nil {
		return decimal.Decimal{}, false
	}

	cleaned := strings.ToUpper(strings.TrimSpace(*raw))
	cleaned = strings.TrimSuffix(cleaned, "RWF")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return amount, true
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
