package repository

import (
	"context"

	"github.com/IsPeeves/lumenixorg/models"

	"gorm.io/gorm"
)

type PaymentHistories struct {
	db *gorm.DB
}

func NewPaymentHistories(db *gorm.DB) *PaymentHistories {
	return &PaymentHistories{db: db}
}

// Create records a confirmed payment. The referenced client must exist; the
// check runs first so a dangling clientId surfaces as not-found rather than a
// foreign key fault.
func (r *PaymentHistories) Create(ctx context.Context, p models.PaymentHistory) (models.PaymentHistory, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, p.ClientID).Error; err != nil {
		return models.PaymentHistory{}, classify(err, "client not found")
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.PaymentHistory{}, classify(err, "payment history not found")
	}
	return p, nil
}

// ListByClient returns a client's payment history, most recent payment first.
func (r *PaymentHistories) ListByClient(ctx context.Context, clientID uint) ([]models.PaymentHistory, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, clientID).Error; err != nil {
		return nil, classify(err, "client not found")
	}

	history := make([]models.PaymentHistory, 0)
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("payment_date DESC, created_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, classify(err, "payment history not found")
	}
	return history, nil
}
