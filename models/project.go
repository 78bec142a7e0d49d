package models

import "time"

// Project is a portfolio entry shown on the public landing page. Order values
// drive display sequencing and are neither unique nor contiguous; ties are
// broken by newest-first.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Image       string    `json:"image" gorm:"not null"`
	Link        *string   `json:"link"`
	Order       int       `json:"order" gorm:"column:order;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
