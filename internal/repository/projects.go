package repository

import (
	"context"

	"github.com/IsPeeves/lumenixorg/models"

	"gorm.io/gorm"
)

// ProjectOrder is one entry of a bulk display-order re-assignment.
type ProjectOrder struct {
	ID    uint
	Order int
}

type Projects struct {
	db *gorm.DB
}

func NewProjects(db *gorm.DB) *Projects {
	return &Projects{db: db}
}

// List returns every project sorted by display order, newest-first on ties.
func (r *Projects) List(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.WithContext(ctx).
		Order(`"order" ASC, created_at DESC`).
		Find(&projects).Error
	if err != nil {
		return nil, classify(err, "project not found")
	}
	return projects, nil
}

func (r *Projects) GetByID(ctx context.Context, id uint) (models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Project{}, classify(err, "project not found")
	}
	return p, nil
}

func (r *Projects) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return models.Project{}, classify(err, "project not found")
	}
	return p, nil
}

func (r *Projects) Update(ctx context.Context, id uint, updates map[string]any) (models.Project, error) {
	cols, err := toColumns(projectColumns, updates)
	if err != nil {
		return models.Project{}, err
	}

	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Project{}, classify(err, "project not found")
	}
	if err := r.db.WithContext(ctx).Model(&p).Updates(cols).Error; err != nil {
		return models.Project{}, classify(err, "project not found")
	}
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return models.Project{}, classify(err, "project not found")
	}
	return p, nil
}

func (r *Projects) Delete(ctx context.Context, id uint) error {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return classify(err, "project not found")
	}
	return classify(r.db.WithContext(ctx).Delete(&models.Project{}, id).Error, "project not found")
}

// Reorder re-assigns display order values across all affected rows in one
// transaction. Any unknown id aborts the whole batch.
func (r *Projects) Reorder(ctx context.Context, orders []ProjectOrder) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range orders {
			result := tx.Model(&models.Project{}).
				Where("id = ?", item.ID).
				Update("order", item.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	return classify(err, "project not found")
}
