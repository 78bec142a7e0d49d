// Package validation normalizes raw request payloads into model values or
// rejects them with field-level messages. Validators are pure: strings are
// trimmed, numerics coerced, defaults applied, and nothing here touches the
// store.
package validation

import (
	"net/url"
	"strings"
)

// validURL reports whether s parses as an absolute URL.
func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// optionalURL normalizes an optional link field: a missing or blank value
// becomes nil, anything else must parse as a URL.
func optionalURL(raw *string, field string, fields map[string]string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	if !validURL(trimmed) {
		fields[field] = "must be a valid URL"
		return nil
	}
	return &trimmed
}
