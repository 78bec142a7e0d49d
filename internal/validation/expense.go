package validation

import (
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/models"
)

// ExpenseInput is the external representation of an expense payload. Dates
// travel as YYYY-MM-DD strings.
type ExpenseInput struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Frequency   *string  `json:"frequency,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// NewExpense validates a creation payload and returns the normalized model.
func NewExpense(in ExpenseInput) (models.Expense, error) {
	fields := map[string]string{}
	var e models.Expense

	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		fields["description"] = "must be a non-empty string"
	} else if len(strings.TrimSpace(*in.Description)) > 255 {
		fields["description"] = "must be at most 255 characters"
	} else {
		e.Description = strings.TrimSpace(*in.Description)
	}

	if in.Amount == nil {
		fields["amount"] = "is required"
	} else if *in.Amount <= 0 {
		fields["amount"] = "must be a positive number"
	} else {
		e.Amount = models.Money(*in.Amount)
	}

	if in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		fields["category"] = "must be a non-empty string"
	} else {
		e.Category = strings.TrimSpace(*in.Category)
	}

	if in.Date == nil {
		fields["date"] = "is required"
	} else if d, err := models.ParseDate(strings.TrimSpace(*in.Date)); err != nil {
		fields["date"] = "must be a valid date (YYYY-MM-DD)"
	} else {
		e.Date = d
	}

	if in.Frequency != nil {
		if !models.ValidFrequency(*in.Frequency) {
			fields["frequency"] = "must be Única, Mensal or Anual"
		} else {
			f := *in.Frequency
			e.Frequency = &f
		}
	}

	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		if d, err := models.ParseDate(strings.TrimSpace(*in.DueDate)); err != nil {
			fields["dueDate"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			e.DueDate = &d
		}
	}

	e.Status = models.StatusPendente
	if in.Status != nil {
		if !models.ValidPaymentStatus(*in.Status) {
			fields["status"] = "must be Pendente, Pago or Atrasado"
		} else {
			e.Status = *in.Status
		}
	}

	if len(fields) > 0 {
		return models.Expense{}, apperr.Validation(fields)
	}
	return e, nil
}

// ExpenseUpdate validates a partial-update payload; keys in the returned map
// use external names.
func ExpenseUpdate(in ExpenseInput) (map[string]any, error) {
	fields := map[string]string{}
	updates := map[string]any{}

	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		switch {
		case trimmed == "":
			fields["description"] = "must be a non-empty string"
		case len(trimmed) > 255:
			fields["description"] = "must be at most 255 characters"
		default:
			updates["description"] = trimmed
		}
	}

	if in.Amount != nil {
		if *in.Amount <= 0 {
			fields["amount"] = "must be a positive number"
		} else {
			updates["amount"] = *in.Amount
		}
	}

	if in.Category != nil {
		if trimmed := strings.TrimSpace(*in.Category); trimmed == "" {
			fields["category"] = "must be a non-empty string"
		} else {
			updates["category"] = trimmed
		}
	}

	if in.Date != nil {
		if d, err := models.ParseDate(strings.TrimSpace(*in.Date)); err != nil {
			fields["date"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			updates["date"] = d
		}
	}

	if in.Frequency != nil {
		if !models.ValidFrequency(*in.Frequency) {
			fields["frequency"] = "must be Única, Mensal or Anual"
		} else {
			updates["frequency"] = *in.Frequency
		}
	}

	if in.DueDate != nil {
		if trimmed := strings.TrimSpace(*in.DueDate); trimmed == "" {
			updates["dueDate"] = nil
		} else if d, err := models.ParseDate(trimmed); err != nil {
			fields["dueDate"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			updates["dueDate"] = d
		}
	}

	if in.Status != nil {
		if !models.ValidPaymentStatus(*in.Status) {
			fields["status"] = "must be Pendente, Pago or Atrasado"
		} else {
			updates["status"] = *in.Status
		}
	}

	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}
	if len(updates) == 0 {
		return nil, apperr.ValidationMsg("no fields to update")
	}
	return updates, nil
}
