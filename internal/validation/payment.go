package validation

import (
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/models"
)

// PaymentHistoryInput is the payload of the payment confirmation flow.
type PaymentHistoryInput struct {
	ClientID       *uint    `json:"clientId,omitempty"`
	AmountReceived *float64 `json:"amountReceived,omitempty"`
	PaymentDate    *string  `json:"paymentDate,omitempty"`
	Observations   *string  `json:"observations,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// NewPaymentHistory validates a confirmation payload. Status defaults to
// "Pago" since the flow records received payments.
func NewPaymentHistory(in PaymentHistoryInput) (models.PaymentHistory, error) {
	fields := map[string]string{}
	var p models.PaymentHistory

	if in.ClientID == nil || *in.ClientID == 0 {
		fields["clientId"] = "is required"
	} else {
		p.ClientID = *in.ClientID
	}

	if in.AmountReceived == nil {
		fields["amountReceived"] = "is required"
	} else if *in.AmountReceived <= 0 {
		fields["amountReceived"] = "must be a positive number"
	} else {
		p.AmountReceived = models.Money(*in.AmountReceived)
	}

	if in.PaymentDate == nil {
		fields["paymentDate"] = "is required"
	} else if d, err := models.ParseDate(strings.TrimSpace(*in.PaymentDate)); err != nil {
		fields["paymentDate"] = "must be a valid date (YYYY-MM-DD)"
	} else {
		p.PaymentDate = d
	}

	if in.Observations != nil {
		p.Observations = strings.TrimSpace(*in.Observations)
	}

	p.Status = models.StatusPago
	if in.Status != nil {
		if !models.ValidPaymentStatus(*in.Status) {
			fields["status"] = "must be Pendente, Pago or Atrasado"
		} else {
			p.Status = *in.Status
		}
	}

	if len(fields) > 0 {
		return models.PaymentHistory{}, apperr.Validation(fields)
	}
	return p, nil
}
