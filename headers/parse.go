package headers

import (
	"bytes"
	"errors"
)

// ErrMalformedHeaderLine flags a header line with no colon, an empty
// field name, or obsolete line folding (a continuation line starting
// with SP/HTAB) — none of which this engine supports.
var ErrMalformedHeaderLine = errors.New("malformed header line")

// ParseLines reads "Name: value" lines (already split on CRLF, first
// line already removed by the caller) into a fresh Headers map. Blank
// lines are skipped; §4.2 only ever hands this the lines between the
// first line and the terminating blank line, so none should remain, but
// tolerating blanks keeps this usable on raw splits too.
func ParseLines(lines [][]byte) (Headers, error) {
	h := New()

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			return Headers{}, ErrMalformedHeaderLine
		}

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return Headers{}, ErrMalformedHeaderLine
		}

		name := bytes.TrimSpace(line[:colon])
		if bytes.ContainsAny(name, " \t") || len(name) == 0 {
			return Headers{}, ErrMalformedHeaderLine
		}

		value := bytes.TrimSpace(line[colon+1:])
		h.Set(string(name), string(value))
	}

	return h, nil
}
