// Package repository performs CRUD against the relational store. It owns the
// external-to-storage field naming, existence checks before mutations, and
// the translation of driver failures into the shared error taxonomy.
package repository

import (
	"context"

	"github.com/IsPeeves/lumenixorg/models"

	"gorm.io/gorm"
)

// ListOptions caps a listing. A zero Limit returns everything.
type ListOptions struct {
	Offset int
	Limit  int
}

type Clients struct {
	db *gorm.DB
}

func NewClients(db *gorm.DB) *Clients {
	return &Clients{db: db}
}

// List returns clients newest-first together with the total row count.
func (r *Clients) List(ctx context.Context, opt ListOptions) ([]models.Client, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, classify(err, "client not found")
	}

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if opt.Limit > 0 {
		q = q.Offset(opt.Offset).Limit(opt.Limit)
	}

	clients := make([]models.Client, 0)
	if err := q.Find(&clients).Error; err != nil {
		return nil, 0, classify(err, "client not found")
	}
	return clients, total, nil
}

func (r *Clients) GetByID(ctx context.Context, id uint) (models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return models.Client{}, classify(err, "client not found")
	}
	return c, nil
}

func (r *Clients) Create(ctx context.Context, c models.Client) (models.Client, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Client{}, classify(err, "client not found")
	}
	return c, nil
}

// Update applies a validated partial-field set keyed by external names and
// returns the stored record. The client must exist.
func (r *Clients) Update(ctx context.Context, id uint, updates map[string]any) (models.Client, error) {
	cols, err := toColumns(clientColumns, updates)
	if err != nil {
		return models.Client{}, err
	}

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return models.Client{}, classify(err, "client not found")
	}
	if err := r.db.WithContext(ctx).Model(&c).Updates(cols).Error; err != nil {
		return models.Client{}, classify(err, "client not found")
	}
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return models.Client{}, classify(err, "client not found")
	}
	return c, nil
}

// Delete removes the client and every payment history row referencing it in
// one transaction.
func (r *Clients) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Client
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.PaymentHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})
	return classify(err, "client not found")
}
