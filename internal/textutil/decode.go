package textutil

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewLenientReader wraps r so ill-formed UTF-8 sequences are dropped instead
// of surfacing as decoding errors. Well-formed text passes through unchanged,
// including literal U+FFFD characters.
func NewLenientReader(r io.Reader) io.Reader {
	return transform.NewReader(r, dropInvalid{})
}

// dropInvalid skips every byte that does not start a valid UTF-8 encoding.
type dropInvalid struct{ transform.NopResetter }

func (dropInvalid) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}
