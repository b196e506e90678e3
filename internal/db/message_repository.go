package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/josep-prog-lab/payment-platform/internal/models"
)

// MessageRepository defines data access for inbound SMS records.
type MessageRepository interface {
	Append(msg *models.InboundMessage) error
	FindByTxID(txid string) (*models.InboundMessage, error)
	FindByRawText(rawText string) (*models.InboundMessage, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Append inserts one inbound message row. Rows are append-only; callers
// are expected to check for duplicates first via FindByRawText/FindByTxID.
func (r *messageRepository) Append(msg *models.InboundMessage) error {
	if msg == nil {
		return fmt.Errorf("message cannot be nil")
	}

	if msg.RawText == "" {
		return fmt.Errorf("raw text is required")
	}

	if msg.CreatedAt == 0 {
		msg.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO messages (raw_text, txid, amount, sender_name, timestamp,
			sender_phone_digits, ml_confidence, payment_status, is_payment_sms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		msg.RawText,
		msg.TxID,
		msg.Amount,
		msg.SenderName,
		msg.Timestamp,
		msg.SenderPhoneDigits,
		msg.MLConfidence,
		msg.PaymentStatus,
		msg.IsPaymentSMS,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted message id: %w", err)
	}
	msg.ID = id

	return nil
}

// FindByTxID retrieves the inbound message carrying the given txid.
// Returns (nil, nil) when no such message exists.
func (r *messageRepository) FindByTxID(txid string) (*models.InboundMessage, error) {
	if txid == "" {
		return nil, fmt.Errorf("txid cannot be empty")
	}

	return r.findOne("txid = ?", txid)
}

// FindByRawText retrieves the inbound message with exactly this raw text.
// Returns (nil, nil) when no such message exists.
func (r *messageRepository) FindByRawText(rawText string) (*models.InboundMessage, error) {
	if rawText == "" {
		return nil, fmt.Errorf("raw text cannot be empty")
	}

	return r.findOne("raw_text = ?", rawText)
}

func (r *messageRepository) findOne(where string, arg interface{}) (*models.InboundMessage, error) {
	query := fmt.Sprintf(`
		SELECT id, raw_text, txid, amount, sender_name, timestamp,
			sender_phone_digits, ml_confidence, payment_status, is_payment_sms, created_at
		FROM messages
		WHERE %s
		ORDER BY id ASC
		LIMIT 1
	`, where)

	msg := &models.InboundMessage{}
	err := r.db.QueryRow(query, arg).Scan(
		&msg.ID,
		&msg.RawText,
		&msg.TxID,
		&msg.Amount,
		&msg.SenderName,
		&msg.Timestamp,
		&msg.SenderPhoneDigits,
		&msg.MLConfidence,
		&msg.PaymentStatus,
		&msg.IsPaymentSMS,
		&msg.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query message: %w", err)
	}

	return msg, nil
}
