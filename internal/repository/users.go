package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/IsPeeves/lumenixorg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return models.User{}, classify(err, "user not found")
	}
	return u, nil
}

// EnsureAdmin seeds the admin account from environment credentials on first
// boot. An existing account with the same email is left untouched.
func (r *Users) EnsureAdmin(ctx context.Context, email, name, password string) error {
	var existing models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return classify(err, "user not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := models.User{
		Email:    email,
		Name:     name,
		Password: string(hash),
		Role:     "admin",
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return classify(err, "user not found")
	}
	slog.Info("admin account created", "email", email)
	return nil
}
