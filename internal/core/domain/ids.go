package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	kebabCase  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hexColor   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
)

// DateLayout is the only accepted document date format.
const DateLayout = "2006-01-02"

// IsKebabCase reports whether s is lowercase alphanumeric segments joined
// by single hyphens.
func IsKebabCase(s string) bool {
	return kebabCase.MatchString(s)
}

// ValidateID checks an entity id. The error names the row because the id
// cannot identify itself.
func ValidateID(kind, id string, row int) error {
	if !IsKebabCase(id) {
		return &ValidationError{
			EntityID: fmt.Sprintf("row %d", row),
			Field:    kind + " id",
			Value:    id,
			Reason:   `must be lowercase kebab-case (e.g. "pile-testing")`,
		}
	}
	return nil
}

// ValidateDate checks that value is YYYY-MM-DD and a real calendar date.
func ValidateDate(value, entityID string) error {
	if !dateFormat.MatchString(value) {
		return &ValidationError{
			EntityID: entityID,
			Field:    "date",
			Value:    value,
			Reason:   `must be in YYYY-MM-DD format (e.g. "2023-06-15")`,
		}
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return &ValidationError{
			EntityID: entityID,
			Field:    "date",
			Value:    value,
			Reason:   "must be a valid calendar date",
		}
	}
	return nil
}

// IsHexColor reports whether s is a 6-digit #RRGGBB colour.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// Slugify lowercases a display name, turns whitespace runs into hyphens
// and strips everything outside [a-z0-9-].
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	return nonSlugChars.ReplaceAllString(s, "")
}
