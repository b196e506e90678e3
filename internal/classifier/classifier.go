// Package classifier turns raw SMS text into a structured extraction
// result: payment detection, status, per-field extraction and a confidence
// score. It is pure and never fails on malformed input; at worst every
// field is nil and confidence is zero.
package classifier

import (
	"regexp"
	"strings"

	"github.com/josep-prog-lab/payment-platform/internal/models"
)

// Result is the classifier's output for one SMS.
type Result struct {
	IsPaymentSMS bool
	Status       models.PaymentStatus
	Confidence   float64
	Fields       models.ExtractedFields
}

// Classifier detects payment SMS via marker tokens and extracts fields via
// an ordered set of independent patterns.
type Classifier struct {
	successKeywords []string
	failureKeywords []string
	momoPatterns    []*regexp.Regexp
	extractors      []extractor
}

// New returns a classifier configured for the MTN MoMo SMS formats.
func New() *Classifier {
	return &Classifier{
		successKeywords: []string{
			"received", "sent", "paid", "successful", "completed",
			"confirmed", "approved", "transaction", "transfer", "credited",
		},
		failureKeywords: []string{
			"failed", "declined", "insufficient", "pending",
			"cancelled", "error", "rejected",
		},
		momoPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\*161\*TxId:\d+\*R\*`),
			regexp.MustCompile(`(?i)You have received \d+ RWF`),
			regexp.MustCompile(`(?i)You have sent \d+ RWF`),
		},
		extractors: defaultExtractors(),
	}
}

// Classify runs detection, status determination, field extraction and
// confidence scoring over one raw SMS text.
func (c *Classifier) Classify(text string) Result {
	result := Result{Status: models.StatusUnknown}

	if strings.TrimSpace(text) == "" {
		return result
	}

	momoMatched := c.matchesMomoPattern(text)
	result.IsPaymentSMS = momoMatched || c.hasPaymentKeyword(text)
	if !result.IsPaymentSMS {
		return result
	}

	result.Status = c.classifyStatus(text)
	result.Fields = c.extractFields(text)
	result.Confidence = c.confidence(momoMatched, result.Status, result.Fields)

	return result
}

// classifyStatus inspects failure markers before success markers; an SMS
// naming both (e.g. a reversal notice) is treated as failed.
func (c *Classifier) classifyStatus(text string) models.PaymentStatus {
	lower := strings.ToLower(text)

	for _, keyword := range c.failureKeywords {
		if strings.Contains(lower, keyword) {
			return models.StatusFailed
		}
	}

	for _, keyword := range c.successKeywords {
		if strings.Contains(lower, keyword) {
			return models.StatusSuccess
		}
	}

	return models.StatusUnknown
}

func (c *Classifier) extractFields(text string) models.ExtractedFields {
	fields := models.ExtractedFields{}
	for _, e := range c.extractors {
		value, ok := e.extract(text)
		if !ok {
			continue
		}
		v := value
		switch e.field {
		case fieldTxID:
			fields.TxID = &v
		case fieldAmount:
			fields.Amount = &v
		case fieldSenderName:
			fields.SenderName = &v
		case fieldPhoneDigits:
			fields.PhoneDigits = &v
		case fieldTimestamp:
			fields.Timestamp = &v
		}
	}
	return fields
}

// confidence combines marker presence, extracted-field count and status
// unambiguity. More extracted fields or an unambiguous status never lower
// the score.
func (c *Classifier) confidence(momoMatched bool, status models.PaymentStatus, fields models.ExtractedFields) float64 {
	score := 0.4
	if momoMatched {
		score += 0.1
	}

	for _, field := range []*string{fields.TxID, fields.Amount, fields.SenderName, fields.PhoneDigits} {
		if field != nil {
			score += 0.1
		}
	}

	if status != models.StatusUnknown {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func (c *Classifier) matchesMomoPattern(text string) bool {
	for _, pattern := range c.momoPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func (c *Classifier) hasPaymentKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range append(c.successKeywords, c.failureKeywords...) {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
