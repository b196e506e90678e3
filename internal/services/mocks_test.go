package services

import (
	"github.com/josep-prog-lab/payment-platform/internal/models"
)

type mockMessageRepo struct {
	appendFunc        func(*models.InboundMessage) error
	findByTxIDFunc    func(string) (*models.InboundMessage, error)
	findByRawTextFunc func(string) (*models.InboundMessage, error)
}

func (m *mockMessageRepo) Append(msg *models.InboundMessage) error {
	if m.appendFunc != nil {
		return m.appendFunc(msg)
	}
	return nil
}

func (m *mockMessageRepo) FindByTxID(txid string) (*models.InboundMessage, error) {
	if m.findByTxIDFunc != nil {
		return m.findByTxIDFunc(txid)
	}
	return nil, nil
}

func (m *mockMessageRepo) FindByRawText(rawText string) (*models.InboundMessage, error) {
	if m.findByRawTextFunc != nil {
		return m.findByRawTextFunc(rawText)
	}
	return nil, nil
}

type mockPaymentRepo struct {
	upsertFunc     func(*models.VerifiedPayment) (*models.VerifiedPayment, error)
	findByTxIDFunc func(string) (*models.VerifiedPayment, error)
}

func (m *mockPaymentRepo) Upsert(payment *models.VerifiedPayment) (*models.VerifiedPayment, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(payment)
	}
	stored := *payment
	if stored.ID == "" {
		stored.ID = "test-payment-id"
	}
	if stored.VerificationStatus == "" {
		stored.VerificationStatus = models.VerificationStatusApproved
	}
	return &stored, nil
}

func (m *mockPaymentRepo) FindByTxID(txid string) (*models.VerifiedPayment, error) {
	if m.findByTxIDFunc != nil {
		return m.findByTxIDFunc(txid)
	}
	return nil, nil
}
