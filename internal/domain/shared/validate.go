package shared

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, Invalid(field + " must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// ParseOptionalDate parses value when it is not blank
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RequireName trims and checks a display name, returning the cleaned value.
func RequireName(field, value string, maxLen int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", Invalid(field + " is required")
	}
	if maxLen > 0 && len([]rune(v)) > maxLen {
		return "", Invalid(field + " is too long")
	}
	return v, nil
}

// RequireNonNegative rejects negative decimal quantities.
func RequireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return Invalid(field + " cannot be negative")
	}
	return nil
}
