// Package response models HTTP/1.1 responses: the header block, the
// body, serialization, and the adaptor that turns a handler's return
// value into a Response (spec §4.5, §4.9).
package response

import (
	"bufio"
	"bytes"
	"fmt"

	"httpengine/body"
	"httpengine/headers"
	"httpengine/httperr"
	"httpengine/internal/headerstream"
	"httpengine/status"
	"httpengine/version"
)

// ResponseHeader is the status line plus its header map.
type ResponseHeader struct {
	Version version.Version
	Status  status.Status
	Headers headers.Headers
}

// DefaultResponseHeader returns "1.1 200 OK" with an empty header map.
func DefaultResponseHeader() ResponseHeader {
	return ResponseHeader{Version: version.HTTP11, Status: status.OK, Headers: headers.New()}
}

// Response is always present with a body, even if empty (a 204 No
// Content response built by Builder always has an empty body).
type Response struct {
	Header ResponseHeader
	Body   body.Body
}

// Bytes serializes the response per §4.5: status line, headers, blank
// line, body verbatim.
func (r Response) Bytes() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "HTTP/%s %d %s\r\n", r.Header.Version, r.Header.Status.Code, r.Header.Status.Reason)

	for _, name := range r.Header.Headers.Names() {
		fmt.Fprintf(&buf, "%s: %s\r\n", name, r.Header.Headers.Get(name))
	}
	buf.WriteString("\r\n")
	buf.Write(r.Body.Bytes)

	return buf.Bytes()
}

// WriteTo writes the full serialized form and flushes, per §4.5's
// write_to contract.
func (r Response) WriteTo(w *bufio.Writer) error {
	if _, err := w.Write(r.Bytes()); err != nil {
		return httperr.FromIOError(err)
	}
	if err := w.Flush(); err != nil {
		return httperr.FromIOError(err)
	}
	return nil
}

// FromReader parses a response off a buffered stream — the symmetric
// counterpart to request.FromReader, used by the stub client.
func FromReader(r *bufio.Reader) (*Response, error) {
	raw, err := headerstream.ReadRaw(r)
	if err != nil {
		return nil, err
	}

	header, err := parseResponseHeader(raw)
	if err != nil {
		return nil, err
	}

	var b body.Body
	if n, ok := header.Headers.ContentLength(); ok {
		b, err = body.ReadFixedLength(r, n)
	} else if header.Headers.HasToken("Transfer-Encoding", "chunked") {
		b, err = body.ReadChunked(r)
	} else {
		b = body.Empty()
	}
	if err != nil {
		return nil, err
	}

	return &Response{Header: header, Body: b}, nil
}

var crlf = []byte("\r\n")

func parseResponseHeader(raw []byte) (ResponseHeader, error) {
	trimmed := bytes.TrimSuffix(raw, crlf)
	trimmed = bytes.TrimSuffix(trimmed, crlf)

	lines := bytes.Split(trimmed, crlf)
	if len(lines) == 0 {
		return ResponseHeader{}, httperr.NewOther("failed to read response status line")
	}

	tokens := bytes.SplitN(lines[0], []byte(" "), 3)
	if len(tokens) != 3 {
		return ResponseHeader{}, httperr.NewOther("failed to read response status line")
	}

	ver, err := version.Parse(string(tokens[0]))
	if err != nil {
		return ResponseHeader{}, httperr.NewOther(fmt.Sprintf("failed to read response version: %v", err))
	}

	st, err := status.Parse(string(tokens[1]), string(tokens[2]))
	if err != nil {
		return ResponseHeader{}, httperr.NewOther(fmt.Sprintf("failed to read response status code: %v", err))
	}

	h, err := headers.ParseLines(lines[1:])
	if err != nil {
		return ResponseHeader{}, httperr.NewOther(err.Error())
	}

	return ResponseHeader{Version: ver, Status: st, Headers: h}, nil
}
