package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatLabel turns a slug into a display label: "pile-testing" becomes
// "Pile Testing".
func FormatLabel(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
