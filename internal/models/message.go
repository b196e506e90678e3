package models

import "regexp"

// PaymentStatus is the classified outcome of a payment SMS.
type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
	StatusUnknown PaymentStatus = "unknown"
)

// InboundMessage is one stored row per received SMS. Rows are append-only:
// they are never mutated or deleted once written.
type InboundMessage struct {
	ID                int64         `json:"id"`
	RawText           string        `json:"raw_text"`
	TxID              *string       `json:"txid"`
	Amount            *string       `json:"amount"`
	SenderName        *string       `json:"sender_name"`
	Timestamp         *string       `json:"timestamp"`
	SenderPhoneDigits *string       `json:"sender_phone_digits"`
	MLConfidence      float64       `json:"ml_confidence"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	IsPaymentSMS      bool          `json:"is_payment_sms"`
	CreatedAt         int64         `json:"created_at"`
}

// ReceiveSMSRequest is the payload posted by the SMS-forwarding client.
type ReceiveSMSRequest struct {
	Message string `json:"message"`
}

// ExtractedFields holds the classifier's per-field results. A nil field
// means its pattern did not match.
type ExtractedFields struct {
	TxID        *string `json:"txid"`
	Amount      *string `json:"amount"`
	SenderName  *string `json:"sender_name"`
	PhoneDigits *string `json:"phone_digits"`
	Timestamp   *string `json:"timestamp"`
}

// ExtractionSummary is returned by the ingestion endpoint. It is a summary
// of the stored row, not the row itself.
type ExtractionSummary struct {
	IsPaymentSMS bool            `json:"is_payment_sms"`
	Status       PaymentStatus   `json:"status"`
	Confidence   float64         `json:"confidence"`
	Extracted    ExtractedFields `json:"extracted"`
	Duplicate    bool            `json:"duplicate,omitempty"`
}

var txidPattern = regexp.MustCompile(`^[A-Za-z0-9]{4,32}$`)

// ValidTxID reports whether a client-submitted transaction ID is plausible:
// alphanumeric, 4 to 32 characters.
func ValidTxID(txid string) bool {
	return txidPattern.MatchString(txid)
}
