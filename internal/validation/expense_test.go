package validation

import (
	"testing"

	"github.com/IsPeeves/lumenixorg/models"
)

func TestNewExpense(t *testing.T) {
	t.Run("defaults status to Pendente", func(t *testing.T) {
		e, err := NewExpense(ExpenseInput{
			Description: strPtr("Hospedagem"),
			Amount:      floatPtr(49.9),
			Category:    strPtr("Infraestrutura"),
			Date:        strPtr("2025-03-01"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Status != models.StatusPendente {
			t.Errorf("status = %q, want %q", e.Status, models.StatusPendente)
		}
		if e.Frequency != nil {
			t.Errorf("frequency = %v, want nil", *e.Frequency)
		}
		if e.DueDate != nil {
			t.Errorf("due date = %v, want nil", e.DueDate)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, raw := range []string{"01/03/2025", "2025-13-01", "yesterday"} {
			_, err := NewExpense(ExpenseInput{
				Description: strPtr("Hospedagem"),
				Amount:      floatPtr(49.9),
				Category:    strPtr("Infraestrutura"),
				Date:        strPtr(raw),
			})
			fields := validationFields(t, err)
			if _, ok := fields["date"]; !ok {
				t.Errorf("date %q: expected field error, got %v", raw, fields)
			}
		}
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		_, err := NewExpense(ExpenseInput{
			Description: strPtr("Hospedagem"),
			Amount:      floatPtr(49.9),
			Category:    strPtr("Infraestrutura"),
			Date:        strPtr("2025-03-01"),
			Frequency:   strPtr("Semanal"),
		})
		fields := validationFields(t, err)
		if _, ok := fields["frequency"]; !ok {
			t.Errorf("expected frequency field error, got %v", fields)
		}
	})

	t.Run("accepts every known frequency", func(t *testing.T) {
		for _, f := range []string{models.FrequencyUnica, models.FrequencyMensal, models.FrequencyAnual} {
			e, err := NewExpense(ExpenseInput{
				Description: strPtr("Hospedagem"),
				Amount:      floatPtr(49.9),
				Category:    strPtr("Infraestrutura"),
				Date:        strPtr("2025-03-01"),
				Frequency:   strPtr(f),
			})
			if err != nil {
				t.Fatalf("frequency %q: unexpected error: %v", f, err)
			}
			if e.Frequency == nil || *e.Frequency != f {
				t.Errorf("frequency = %v, want %q", e.Frequency, f)
			}
		}
	})

	t.Run("blank due date stays unset", func(t *testing.T) {
		e, err := NewExpense(ExpenseInput{
			Description: strPtr("Hospedagem"),
			Amount:      floatPtr(49.9),
			Category:    strPtr("Infraestrutura"),
			Date:        strPtr("2025-03-01"),
			DueDate:     strPtr(""),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.DueDate != nil {
			t.Errorf("due date = %v, want nil", e.DueDate)
		}
	})
}

func TestExpenseUpdate(t *testing.T) {
	t.Run("rejects empty payload", func(t *testing.T) {
		if _, err := ExpenseUpdate(ExpenseInput{}); err == nil {
			t.Fatal("expected error for empty update")
		}
	})

	t.Run("includes only supplied fields", func(t *testing.T) {
		updates, err := ExpenseUpdate(ExpenseInput{Status: strPtr(models.StatusPago)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updates) != 1 || updates["status"] != models.StatusPago {
			t.Errorf("updates = %v, want only status=Pago", updates)
		}
	})
}
