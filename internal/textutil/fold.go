package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns the lowercase form of value used for rule matching and
// secondary sort keys. A Caser is stateful, so each call builds its own.
func Lower(value string) string {
	if value == "" {
		return ""
	}
	return cases.Lower(language.Und).String(value)
}

// Upper returns the uppercase form of value used for deduplication keys.
func Upper(value string) string {
	if value == "" {
		return ""
	}
	return cases.Upper(language.Und).String(value)
}
