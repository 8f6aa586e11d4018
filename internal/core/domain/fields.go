package domain

import (
	"math"
	"strconv"
	"strings"
)

// ListSeparator separates values inside a single CSV field.
const ListSeparator = ";"

// SplitList splits a delimited field into trimmed, non-empty parts.
// An empty separator means ListSeparator.
func SplitList(value, sep string) []string {
	if sep == "" {
		sep = ListSeparator
	}
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseBool is true for "true", "1" or "yes" in any case. Anything else is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ParseRequiredNumber parses a required floating point field.
func ParseRequiredNumber(value, field string) (float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, &MissingFieldError{Field: field}
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &InvalidNumberError{Field: field, Value: value}
	}
	return n, nil
}

// RequireNonEmpty returns the trimmed value or a MissingFieldError naming
// the field and its owning entity.
func RequireNonEmpty(value, field, entityID string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &MissingFieldError{Field: field, EntityID: entityID}
	}
	return v, nil
}

// Optional returns the trimmed value, or "" when blank.
func Optional(value string) string {
	return strings.TrimSpace(value)
}

// OrDefault returns the trimmed value, or def when blank.
func OrDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}
