package playlist

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"listone/internal/textutil"
)

const (
	// HeaderMarker opens every written playlist.
	HeaderMarker = "#EXTM3U"
	// InfoMarker starts a metadata line.
	InfoMarker = "#EXTINF"
	// DefaultDuration is the duration written on every metadata line.
	DefaultDuration = "-1"
)

// Pair is one parsed playlist entry.
type Pair struct {
	DisplayName string
	Locator     string
}

// Parse reads the whole of r and returns its pairs in input order.
func Parse(r io.Reader) ([]Pair, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return slices.Collect(Pairs(lines)), nil
}

// ReadLines drains r and splits it into lines. Ill-formed UTF-8 is dropped
// and every Unicode line boundary ends a line, with \r\n counted once.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(textutil.NewLenientReader(r))
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return splitLines(string(data)), nil
}

// Pairs walks lines and yields a pair for every metadata line. The line after
// a metadata line is always consumed as its locator, whatever it contains.
func Pairs(lines []string) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := 0; i < len(lines); {
			line := strings.TrimSpace(lines[i])
			if !IsInfoLine(line) {
				i++
				continue
			}
			pair := Pair{DisplayName: DisplayName(line)}
			if i+1 < len(lines) {
				pair.Locator = strings.TrimSpace(lines[i+1])
			}
			i += 2
			if !yield(pair) {
				return
			}
		}
	}
}

// IsInfoLine reports whether line, after trimming, is a metadata line.
func IsInfoLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), InfoMarker)
}

// DisplayName extracts the text after the last comma of a metadata line. A
// line without a comma yields the whole trimmed line.
func DisplayName(line string) string {
	line = strings.TrimSpace(line)
	if idx := strings.LastIndexByte(line, ','); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return line
}

// splitLines breaks text on \n, \r, \r\n, \v, \f, \x1c-\x1e, U+0085, U+2028
// and U+2029. A \r\n pair counts as one boundary.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
