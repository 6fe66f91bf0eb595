// Package headerstream implements the byte-level framer shared by
// request and response parsing (spec §4.1): read bytes until the
// accumulator ends in CRLFCRLF.
package headerstream

import (
	"bufio"

	"httpengine/httperr"
)

var terminator = [4]byte{'\r', '\n', '\r', '\n'}

// ReadRaw reads one byte at a time from r, accumulating into a buffer,
// until the buffer ends with CRLFCRLF (the blank line terminating a
// header block). The returned slice includes the terminator.
//
// Single-byte reads are deliberate: they guarantee the framer never
// consumes bytes belonging to the body. bufio.Reader amortizes the
// syscall cost, so this stays cheap despite the byte-at-a-time API.
//
// Any read failure before the terminator appears — EOF, a timed-out
// deadline, a reset connection — is reported as DataTimeout, matching
// §4.1's "encompasses both peer-closed and per-read timeout expiry".
func ReadRaw(r *bufio.Reader) ([]byte, error) {
	buf := make([]byte, 0, 256)

	for !endsWithTerminator(buf) {
		b, err := r.ReadByte()
		if err != nil {
			return nil, httperr.ErrDataTimeout
		}
		buf = append(buf, b)
	}

	return buf, nil
}

func endsWithTerminator(buf []byte) bool {
	if len(buf) < len(terminator) {
		return false
	}
	tail := buf[len(buf)-len(terminator):]
	for i, b := range terminator {
		if tail[i] != b {
			return false
		}
	}
	return true
}
