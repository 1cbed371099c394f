package core

// streaming.go provides the readers that sit between the input file and the
// CSV parser:
//
//   - NewDecodingReader: strips a UTF-8 BOM and drops malformed byte
//     sequences, or decodes a legacy single-byte encoding
//   - CountingReader: tracks bytes read for logging
//
// Decoding never fails on bad bytes; exports copied out of PDFs routinely
// contain them.

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the input encoding assumed when none is configured.
const DefaultEncoding = "utf-8"

// NewDecodingReader wraps r so that it yields valid UTF-8.
//
// For UTF-8 input a leading BOM is removed and invalid sequences are dropped.
// Any other encoding name known to the WHATWG index (windows-1252,
// iso-8859-1, ...) is decoded to UTF-8.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	switch name {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, transform.Chain(
			unicode.BOMOverride(transform.Nop),
			dropInvalidUTF8{},
		)), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported input encoding %q: %w", encoding, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// dropInvalidUTF8 removes ill-formed UTF-8 byte sequences and passes
// everything else through, including encoded U+FFFD characters.
// runes.Remove cannot tell the two apart.
type dropInvalidUTF8 struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (dropInvalidUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
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

		_, size := utf8.DecodeRune(src[nSrc:])
		if size == 1 {
			// A rune split across reads is completed on the next call.
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

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}
