package playlist

import (
	"bufio"
	"io"
)

// Write serializes pairs as an extended M3U playlist. The decorated display
// name is written verbatim; an empty locator still produces an empty line.
func Write(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(HeaderMarker)
	bw.WriteByte('\n')
	for _, p := range pairs {
		bw.WriteString(InfoMarker)
		bw.WriteByte(':')
		bw.WriteString(DefaultDuration)
		bw.WriteByte(',')
		bw.WriteString(p.DisplayName)
		bw.WriteByte('\n')
		bw.WriteString(p.Locator)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
