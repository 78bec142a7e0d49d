package repository

import "github.com/IsPeeves/lumenixorg/internal/apperr"

// Per-resource translation tables between external (camelCase) field names and
// storage (snake_case) columns. Partial updates pass through here so the read
// and write paths cannot drift apart.
var clientColumns = map[string]string{
	"companyName":   "company_name",
	"monthlyValue":  "monthly_value",
	"dueDay":        "due_day",
	"websiteLink":   "website_link",
	"paymentStatus": "payment_status",
}

var expenseColumns = map[string]string{
	"description": "description",
	"amount":      "amount",
	"category":    "category",
	"date":        "date",
	"frequency":   "frequency",
	"dueDate":     "due_date",
	"status":      "status",
}

var projectColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"image":       "image",
	"link":        "link",
	"order":       "order",
}

// toColumns rewrites an external-name-keyed update set into column names.
// Unknown names are a client error; they never reach the store.
func toColumns(table map[string]string, updates map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(updates))
	for name, value := range updates {
		col, ok := table[name]
		if !ok {
			return nil, apperr.ValidationMsg("unknown field: " + name)
		}
		out[col] = value
	}
	return out, nil
}
