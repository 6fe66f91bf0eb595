// Package request parses HTTP/1.1 requests off a buffered stream and
// models the per-request data handlers see.
package request

import (
	"bufio"
	"bytes"
	"fmt"

	"httpengine/body"
	"httpengine/headers"
	"httpengine/httperr"
	"httpengine/internal/headerstream"
	"httpengine/method"
	"httpengine/version"
)

// RequestLine is the method/target/version triple parsed from a
// request's first line.
type RequestLine struct {
	Method  method.Method
	Target  string
	Version version.Version
}

// RequestHeader is the request line plus its header map.
type RequestHeader struct {
	RequestLine RequestLine
	Headers     headers.Headers
}

// DefaultRequestHeader returns "GET / 1.1" with an empty header map,
// the spec's documented default.
func DefaultRequestHeader() RequestHeader {
	return RequestHeader{
		RequestLine: RequestLine{Method: method.GET, Target: "/", Version: version.HTTP11},
		Headers:     headers.New(),
	}
}

// Request is a parsed header plus its body.
type Request struct {
	Header RequestHeader
	Body   body.Body
}

var crlf = []byte("\r\n")

// FromReader reads one full request (header block, then body per
// §4.4's selection rules) from r.
func FromReader(r *bufio.Reader) (*Request, error) {
	raw, err := headerstream.ReadRaw(r)
	if err != nil {
		return nil, err
	}

	header, err := parseRequestHeader(raw)
	if err != nil {
		return nil, err
	}

	b, err := selectBody(header.Headers, r)
	if err != nil {
		return nil, err
	}

	return &Request{Header: header, Body: b}, nil
}

// selectBody implements §4.4: Content-Length wins if present and valid,
// else chunked Transfer-Encoding, else no body.
func selectBody(h headers.Headers, r *bufio.Reader) (body.Body, error) {
	if n, ok := h.ContentLength(); ok {
		return body.ReadFixedLength(r, n)
	}
	if h.HasToken("Transfer-Encoding", "chunked") {
		return body.ReadChunked(r)
	}
	return body.Empty(), nil
}

// parseRequestHeader implements §4.2: split on CRLF, tokenize the first
// line by whitespace runs, parse remaining lines as headers.
func parseRequestHeader(raw []byte) (RequestHeader, error) {
	// raw ends with the terminating CRLFCRLF; strip the last two lines'
	// worth (blank line + its CRLF) before splitting on CRLF.
	trimmed := bytes.TrimSuffix(raw, crlf)
	trimmed = bytes.TrimSuffix(trimmed, crlf)

	lines := bytes.Split(trimmed, crlf)
	if len(lines) == 0 {
		return RequestHeader{}, httperr.NewOther("failed to read request line")
	}

	tokens := bytes.Fields(lines[0])
	if len(tokens) != 3 {
		return RequestHeader{}, httperr.NewOther("failed to read request line")
	}

	m, err := method.Parse(string(tokens[0]))
	if err != nil {
		return RequestHeader{}, httperr.NewOther(fmt.Sprintf("failed to read request method: %v", err))
	}

	target := string(tokens[1])
	if target == "" {
		return RequestHeader{}, httperr.NewOther("missing request target")
	}

	ver, err := version.Parse(string(tokens[2]))
	if err != nil {
		return RequestHeader{}, httperr.NewOther(fmt.Sprintf("failed to read request version: %v", err))
	}

	h, err := headers.ParseLines(lines[1:])
	if err != nil {
		return RequestHeader{}, httperr.NewOther(err.Error())
	}

	return RequestHeader{
		RequestLine: RequestLine{Method: m, Target: target, Version: ver},
		Headers:     h,
	}, nil
}
