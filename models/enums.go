package models

// Payment status values shared by clients, expenses and payment history.
// The values are stored and exchanged verbatim (the product is Brazilian,
// the labels are part of the data contract).
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
	StatusAtrasado = "Atrasado"
)

// PaymentStatuses lists every valid payment status.
var PaymentStatuses = []string{StatusPendente, StatusPago, StatusAtrasado}

// Expense frequency values.
const (
	FrequencyUnica  = "Única"
	FrequencyMensal = "Mensal"
	FrequencyAnual  = "Anual"
)

// Frequencies lists every valid expense frequency.
var Frequencies = []string{FrequencyUnica, FrequencyMensal, FrequencyAnual}

// ValidPaymentStatus reports whether s is one of the payment status values.
func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidFrequency reports whether s is one of the expense frequency values.
func ValidFrequency(s string) bool {
	for _, v := range Frequencies {
		if s == v {
			return true
		}
	}
	return false
}
