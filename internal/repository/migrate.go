package repository

import (
	"github.com/IsPeeves/lumenixorg/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the application uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Expense{},
		&models.Project{},
		&models.PaymentHistory{},
	)
}
