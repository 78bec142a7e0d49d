package repository

import (
	"context"

	"github.com/IsPeeves/lumenixorg/models"

	"gorm.io/gorm"
)

type Expenses struct {
	db *gorm.DB
}

func NewExpenses(db *gorm.DB) *Expenses {
	return &Expenses{db: db}
}

// List returns expenses newest-first together with the total row count.
func (r *Expenses) List(ctx context.Context, opt ListOptions) ([]models.Expense, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, classify(err, "expense not found")
	}

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if opt.Limit > 0 {
		q = q.Offset(opt.Offset).Limit(opt.Limit)
	}

	expenses := make([]models.Expense, 0)
	if err := q.Find(&expenses).Error; err != nil {
		return nil, 0, classify(err, "expense not found")
	}
	return expenses, total, nil
}

func (r *Expenses) GetByID(ctx context.Context, id uint) (models.Expense, error) {
	var e models.Expense
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return models.Expense{}, classify(err, "expense not found")
	}
	return e, nil
}

func (r *Expenses) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Expense{}, classify(err, "expense not found")
	}
	return e, nil
}

func (r *Expenses) Update(ctx context.Context, id uint, updates map[string]any) (models.Expense, error) {
	cols, err := toColumns(expenseColumns, updates)
	if err != nil {
		return models.Expense{}, err
	}

	var e models.Expense
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return models.Expense{}, classify(err, "expense not found")
	}
	if err := r.db.WithContext(ctx).Model(&e).Updates(cols).Error; err != nil {
		return models.Expense{}, classify(err, "expense not found")
	}
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return models.Expense{}, classify(err, "expense not found")
	}
	return e, nil
}

func (r *Expenses) Delete(ctx context.Context, id uint) error {
	var e models.Expense
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return classify(err, "expense not found")
	}
	return classify(r.db.WithContext(ctx).Delete(&models.Expense{}, id).Error, "expense not found")
}
