// Package body implements the fixed-length and chunked message body
// readers (spec §4.3) and the Body value they produce.
package body

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"httpengine/httperr"
)

// Body is a byte buffer plus its length. After parsing,
// len(Bytes) == the declared length for fixed-length bodies, or the sum
// of non-zero chunk lengths for chunked bodies.
type Body struct {
	Bytes []byte
}

// Empty returns a zero-length body.
func Empty() Body { return Body{Bytes: []byte{}} }

// New wraps an existing byte slice as a Body.
func New(b []byte) Body { return Body{Bytes: b} }

func (b Body) Len() int { return len(b.Bytes) }

// ReadFixedLength takes exactly n bytes from r.
func ReadFixedLength(r *bufio.Reader, n int) (Body, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	if err != nil {
		return Body{}, httperr.NewOther(fmt.Sprintf(
			"failed to read all of the fixed content length, expected: %d but received: %d", n, got))
	}
	return Body{Bytes: buf}, nil
}

// ReadChunked consumes a chunked-encoded body (spec §4.3): repeatedly
// read a hex chunk-size line, read that many bytes plus its trailing
// CRLF, and stop once a zero-length chunk has been consumed. Chunk
// extensions (text after ';' in the size line) are not supported — a
// size line carrying one fails the hex parse, same as the original this
// engine is modeled on. Trailers after the terminating chunk are not
// surfaced to callers.
func ReadChunked(r *bufio.Reader) (Body, error) {
	var content []byte

	for {
		sizeLine, err := readLine(r)
		if err != nil {
			return Body{}, err
		}

		n, err := strconv.ParseUint(string(sizeLine), 16, 64)
		if err != nil {
			return Body{}, httperr.NewOther(fmt.Sprintf("malformed chunk size %q: %v", sizeLine, err))
		}

		if n == 0 {
			if err := readCRLF(r); err != nil {
				return Body{}, err
			}
			break
		}

		chunk := make([]byte, n)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return Body{}, httperr.FromIOError(err)
		}
		content = append(content, chunk...)

		if err := readCRLF(r); err != nil {
			return Body{}, err
		}
	}

	if content == nil {
		content = []byte{}
	}
	return Body{Bytes: content}, nil
}

// readLine reads bytes one at a time until CRLF, returning the line
// without the terminator.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, httperr.FromIOError(err)
		}
		if b == '\n' && len(line) > 0 && line[len(line)-1] == '\r' {
			return line[:len(line)-1], nil
		}
		line = append(line, b)
	}
}

func readCRLF(r *bufio.Reader) error {
	var sink [2]byte
	if _, err := io.ReadFull(r, sink[:]); err != nil {
		return httperr.FromIOError(err)
	}
	if sink[0] != '\r' || sink[1] != '\n' {
		return httperr.NewOther("expected CRLF after chunk data")
	}
	return nil
}
