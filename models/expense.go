package models

import "time"

// Expense is a standalone cost entry with no relations to other resources.
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Amount      Money     `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    string    `json:"category" gorm:"not null"`
	Date        Date      `json:"date" gorm:"not null"`
	Frequency   *string   `json:"frequency"`
	DueDate     *Date     `json:"dueDate" gorm:"column:due_date"`
	Status      string    `json:"status" gorm:"default:'Pendente'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
