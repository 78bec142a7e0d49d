package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Money is a monetary amount stored as numeric in the database. Some drivers
// hand numeric columns back as strings; Scan coerces whatever arrives into a
// float64. A value that cannot be parsed degrades to 0 instead of failing the
// whole read, so listings stay usable over malformed legacy rows.
type Money float64

func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = 0
	case float64:
		*m = Money(v)
	case float32:
		*m = Money(v)
	case int64:
		*m = Money(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(f)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return float64(m), nil
}
