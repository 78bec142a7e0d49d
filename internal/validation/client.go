package validation

import (
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/models"
)

// ClientInput is the external representation of a client payload. Pointer
// fields distinguish "absent" from "zero" so the same shape serves both
// create and partial update.
type ClientInput struct {
	CompanyName   *string  `json:"companyName,omitempty"`
	MonthlyValue  *float64 `json:"monthlyValue,omitempty"`
	DueDay        *int     `json:"dueDay,omitempty"`
	WebsiteLink   *string  `json:"websiteLink,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
}

// NewClient validates a creation payload and returns the normalized model
// with defaults applied for omitted optional fields.
func NewClient(in ClientInput) (models.Client, error) {
	fields := map[string]string{}
	var c models.Client

	if in.CompanyName == nil || strings.TrimSpace(*in.CompanyName) == "" {
		fields["companyName"] = "must be a non-empty string"
	} else if len(strings.TrimSpace(*in.CompanyName)) > 255 {
		fields["companyName"] = "must be at most 255 characters"
	} else {
		c.CompanyName = strings.TrimSpace(*in.CompanyName)
	}

	if in.MonthlyValue == nil {
		fields["monthlyValue"] = "is required"
	} else if *in.MonthlyValue <= 0 {
		fields["monthlyValue"] = "must be a positive number"
	} else {
		c.MonthlyValue = models.Money(*in.MonthlyValue)
	}

	if in.DueDay == nil {
		fields["dueDay"] = "is required"
	} else if *in.DueDay < 1 || *in.DueDay > 31 {
		fields["dueDay"] = "must be between 1 and 31"
	} else {
		c.DueDay = *in.DueDay
	}

	c.WebsiteLink = optionalURL(in.WebsiteLink, "websiteLink", fields)

	c.PaymentStatus = models.StatusPendente
	if in.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*in.PaymentStatus) {
			fields["paymentStatus"] = "must be Pendente, Pago or Atrasado"
		} else {
			c.PaymentStatus = *in.PaymentStatus
		}
	}

	if len(fields) > 0 {
		return models.Client{}, apperr.Validation(fields)
	}
	return c, nil
}

// ClientUpdate validates a partial-update payload. Only fields present in the
// input participate; an empty field set is rejected. Keys in the returned map
// use external (camelCase) names, translated at the repository boundary.
func ClientUpdate(in ClientInput) (map[string]any, error) {
	fields := map[string]string{}
	updates := map[string]any{}

	if in.CompanyName != nil {
		trimmed := strings.TrimSpace(*in.CompanyName)
		switch {
		case trimmed == "":
			fields["companyName"] = "must be a non-empty string"
		case len(trimmed) > 255:
			fields["companyName"] = "must be at most 255 characters"
		default:
			updates["companyName"] = trimmed
		}
	}

	if in.MonthlyValue != nil {
		if *in.MonthlyValue <= 0 {
			fields["monthlyValue"] = "must be a positive number"
		} else {
			updates["monthlyValue"] = *in.MonthlyValue
		}
	}

	if in.DueDay != nil {
		if *in.DueDay < 1 || *in.DueDay > 31 {
			fields["dueDay"] = "must be between 1 and 31"
		} else {
			updates["dueDay"] = *in.DueDay
		}
	}

	if in.WebsiteLink != nil {
		if link := optionalURL(in.WebsiteLink, "websiteLink", fields); link != nil {
			updates["websiteLink"] = *link
		} else if _, bad := fields["websiteLink"]; !bad {
			// Blank link clears the stored value.
			updates["websiteLink"] = nil
		}
	}

	if in.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*in.PaymentStatus) {
			fields["paymentStatus"] = "must be Pendente, Pago or Atrasado"
		} else {
			updates["paymentStatus"] = *in.PaymentStatus
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
