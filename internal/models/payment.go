package models

// VerifiedPayment records a successful self-verification. txid is unique
// across the table; a second verification of the same txid returns the
// stored row instead of writing another.
type VerifiedPayment struct {
	ID                 string `json:"id"`
	TxID               string `json:"txid"`
	ClientName         string `json:"client_name"`
	ClientPhone        string `json:"client_phone"`
	VerifiedAmount     int64  `json:"verified_amount"`
	VerificationStatus string `json:"verification_status"`
	CreatedAt          int64  `json:"created_at"`
}

// VerificationStatusApproved is the default status of a stored payment.
const VerificationStatusApproved = "approved"

// VerifyRequest is the payer's claim, submitted via the web form or JSON.
type VerifyRequest struct {
	ClientName     string `json:"client_name" form:"client_name"`
	ClientPhone    string `json:"client_phone" form:"client_phone"`
	TxID           string `json:"txid" form:"txid"`
	ExpectedAmount string `json:"expected_amount,omitempty" form:"expected_amount"`
}

// VerifyReason distinguishes verification outcomes. Negative outcomes are
// valid results, not errors.
type VerifyReason string

const (
	ReasonMatched      VerifyReason = "matched"
	ReasonNotFound     VerifyReason = "not_found"
	ReasonNotConfirmed VerifyReason = "not_confirmed"
	ReasonMismatch     VerifyReason = "mismatch"
)

// VerificationOutcome is the result of matching a claim against a stored
// inbound message.
type VerificationOutcome struct {
	Matched        bool         `json:"matched"`
	Reason         VerifyReason `json:"reason"`
	Message        string       `json:"message"`
	VerifiedAmount *int64       `json:"verified_amount,omitempty"`
	Timestamp      *string      `json:"timestamp,omitempty"`
}
