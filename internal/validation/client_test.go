package validation

import (
	"errors"
	"testing"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/models"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int          { return &i }
func uintPtr(u uint) *uint       { return &u }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return ve.Fields
}

func TestNewClient(t *testing.T) {
	t.Run("applies defaults for omitted optionals", func(t *testing.T) {
		c, err := NewClient(ClientInput{
			CompanyName:  strPtr("Acme"),
			MonthlyValue: floatPtr(100),
			DueDay:       intPtr(15),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.PaymentStatus != models.StatusPendente {
			t.Errorf("payment status = %q, want %q", c.PaymentStatus, models.StatusPendente)
		}
		if c.WebsiteLink != nil {
			t.Errorf("website link = %v, want nil", *c.WebsiteLink)
		}
		if c.MonthlyValue != 100 {
			t.Errorf("monthly value = %v, want 100", c.MonthlyValue)
		}
	})

	t.Run("trims company name", func(t *testing.T) {
		c, err := NewClient(ClientInput{
			CompanyName:  strPtr("  Acme  "),
			MonthlyValue: floatPtr(100),
			DueDay:       intPtr(15),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.CompanyName != "Acme" {
			t.Errorf("company name = %q, want %q", c.CompanyName, "Acme")
		}
	})

	t.Run("due day bounds", func(t *testing.T) {
		cases := []struct {
			day  int
			want bool
		}{
			{0, false},
			{-1, false},
			{32, false},
			{1, true},
			{31, true},
		}
		for _, tc := range cases {
			_, err := NewClient(ClientInput{
				CompanyName:  strPtr("Acme"),
				MonthlyValue: floatPtr(100),
				DueDay:       intPtr(tc.day),
			})
			if ok := err == nil; ok != tc.want {
				t.Errorf("dueDay %d: valid = %v, want %v (err: %v)", tc.day, ok, tc.want, err)
			}
		}
	})

	t.Run("rejects non-positive monthly value", func(t *testing.T) {
		_, err := NewClient(ClientInput{
			CompanyName:  strPtr("Acme"),
			MonthlyValue: floatPtr(0),
			DueDay:       intPtr(15),
		})
		fields := validationFields(t, err)
		if _, ok := fields["monthlyValue"]; !ok {
			t.Errorf("expected monthlyValue field error, got %v", fields)
		}
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := NewClient(ClientInput{CompanyName: strPtr("   ")})
		fields := validationFields(t, err)
		for _, f := range []string{"companyName", "monthlyValue", "dueDay"} {
			if _, ok := fields[f]; !ok {
				t.Errorf("missing field error for %q: %v", f, fields)
			}
		}
	})

	t.Run("rejects malformed website link", func(t *testing.T) {
		_, err := NewClient(ClientInput{
			CompanyName:  strPtr("Acme"),
			MonthlyValue: floatPtr(100),
			DueDay:       intPtr(15),
			WebsiteLink:  strPtr("not a url"),
		})
		fields := validationFields(t, err)
		if _, ok := fields["websiteLink"]; !ok {
			t.Errorf("expected websiteLink field error, got %v", fields)
		}
	})

	t.Run("rejects unknown payment status", func(t *testing.T) {
		_, err := NewClient(ClientInput{
			CompanyName:   strPtr("Acme"),
			MonthlyValue:  floatPtr(100),
			DueDay:        intPtr(15),
			PaymentStatus: strPtr("Quitado"),
		})
		fields := validationFields(t, err)
		if _, ok := fields["paymentStatus"]; !ok {
			t.Errorf("expected paymentStatus field error, got %v", fields)
		}
	})
}

func TestClientUpdate(t *testing.T) {
	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := ClientUpdate(ClientInput{})
		if err == nil {
			t.Fatal("expected error for empty update")
		}
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("includes only supplied fields", func(t *testing.T) {
		updates, err := ClientUpdate(ClientInput{DueDay: intPtr(10)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updates) != 1 {
			t.Fatalf("updates = %v, want only dueDay", updates)
		}
		if updates["dueDay"] != 10 {
			t.Errorf("dueDay = %v, want 10", updates["dueDay"])
		}
	})

	t.Run("blank website link clears the field", func(t *testing.T) {
		updates, err := ClientUpdate(ClientInput{WebsiteLink: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := updates["websiteLink"]
		if !ok {
			t.Fatal("websiteLink missing from updates")
		}
		if v != nil {
			t.Errorf("websiteLink = %v, want nil", v)
		}
	})

	t.Run("still validates supplied fields", func(t *testing.T) {
		_, err := ClientUpdate(ClientInput{DueDay: intPtr(40)})
		fields := validationFields(t, err)
		if _, ok := fields["dueDay"]; !ok {
			t.Errorf("expected dueDay field error, got %v", fields)
		}
	})
}
