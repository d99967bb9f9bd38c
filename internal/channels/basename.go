package channels

import (
	"strings"

	"listone/internal/textutil"
)

// suffixMarker separates a channel's base name from decorations such as
// "(V)" or "(2)".
const suffixMarker = " ("

// BaseName strips everything from the first " (" onward and trims the rest.
// "RAI 1 (V) (2)" and "RAI 1" share the base name "RAI 1".
func BaseName(displayName string) string {
	if idx := strings.Index(displayName, suffixMarker); idx >= 0 {
		return strings.TrimSpace(displayName[:idx])
	}
	return strings.TrimSpace(displayName)
}

// Key returns the case-insensitive deduplication key for a display name.
func Key(displayName string) string {
	return textutil.Upper(BaseName(displayName))
}
