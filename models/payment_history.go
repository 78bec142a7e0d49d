package models

import "time"

// PaymentHistory records a confirmed payment for a client. Rows are created
// only through the payment confirmation flow and are never updated or deleted
// through the API; they disappear with their client (cascade).
type PaymentHistory struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ClientID       uint      `json:"clientId" gorm:"column:client_id;not null"`
	AmountReceived Money     `json:"amountReceived" gorm:"column:amount_received;type:numeric(12,2);not null"`
	PaymentDate    Date      `json:"paymentDate" gorm:"column:payment_date;not null"`
	Observations   string    `json:"observations"`
	Status         string    `json:"status" gorm:"default:'Pago'"`
	CreatedAt      time.Time `json:"created_at"`
}
