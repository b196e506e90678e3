package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/josep-prog-lab/payment-platform/internal/models"

	"github.com/google/uuid"
)

// PaymentRepository defines data access for verified-payment records.
type PaymentRepository interface {
	Upsert(payment *models.VerifiedPayment) (*models.VerifiedPayment, error)
	FindByTxID(txid string) (*models.VerifiedPayment, error)
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Upsert inserts the payment unless a row for its txid already exists, and
// returns the stored row either way. A concurrent second verification of
// the same txid therefore never surfaces a uniqueness violation.
func (r *paymentRepository) Upsert(payment *models.VerifiedPayment) (*models.VerifiedPayment, error) {
	if payment == nil {
		return nil, fmt.Errorf("payment cannot be nil")
	}

	if payment.TxID == "" {
		return nil, fmt.Errorf("txid is required")
	}

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	if payment.VerificationStatus == "" {
		payment.VerificationStatus = models.VerificationStatusApproved
	}

	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO payments (id, txid, client_name, client_phone,
			verified_amount, verification_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(txid) DO NOTHING
	`

	_, err := r.db.Exec(query,
		payment.ID,
		payment.TxID,
		payment.ClientName,
		payment.ClientPhone,
		payment.VerifiedAmount,
		payment.VerificationStatus,
		payment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert payment: %w", err)
	}

	stored, err := r.FindByTxID(payment.TxID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("payment missing after upsert for txid %s", payment.TxID)
	}

	return stored, nil
}

// FindByTxID retrieves the verified payment for the given txid.
// Returns (nil, nil) when no such payment exists.
func (r *paymentRepository) FindByTxID(txid string) (*models.VerifiedPayment, error) {
	if txid == "" {
		return nil, fmt.Errorf("txid cannot be empty")
	}

	query := `
		SELECT id, txid, client_name, client_phone, verified_amount,
			verification_status, created_at
		FROM payments
		WHERE txid = ?
	`

	payment := &models.VerifiedPayment{}
	err := r.db.QueryRow(query, txid).Scan(
		&payment.ID,
		&payment.TxID,
		&payment.ClientName,
		&payment.ClientPhone,
		&payment.VerifiedAmount,
		&payment.VerificationStatus,
		&payment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}

	return payment, nil
}
