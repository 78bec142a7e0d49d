package models

import "time"

// Client is a billed customer. Deleting a client cascades to its payment
// history rows.
type Client struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CompanyName   string    `json:"companyName" gorm:"column:company_name;size:255;not null"`
	MonthlyValue  Money     `json:"monthlyValue" gorm:"column:monthly_value;type:numeric(12,2);not null"`
	DueDay        int       `json:"dueDay" gorm:"column:due_day;not null"`
	WebsiteLink   *string   `json:"websiteLink" gorm:"column:website_link"`
	PaymentStatus string    `json:"paymentStatus" gorm:"column:payment_status;default:'Pendente'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	PaymentHistory []PaymentHistory `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
