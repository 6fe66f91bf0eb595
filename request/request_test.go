package request

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpengine/method"
)

func TestFromReaderFixedLengthBody(t *testing.T) {
	raw := "GET /x HTTP/1.1\r\nContent-Length: 12\r\n\r\nHello World!"
	r, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)

	assert.Equal(t, method.GET, r.Header.RequestLine.Method)
	assert.Equal(t, "/x", r.Header.RequestLine.Target)
	assert.Equal(t, "Hello World!", string(r.Body.Bytes))
}

func TestFromReaderChunkedBody(t *testing.T) {
	raw := "POST /chunked HTTP/1.1\r\n" +
		"Transfer-Encoding: chunked\r\n" +
		"\r\n" +
		"4\r\nMozi\r\n" +
		"5\r\nllaDe\r\n" +
		"e\r\nveloperNetwork\r\n" +
		"0\r\n\r\n"

	r, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)

	assert.Equal(t, method.POST, r.Header.RequestLine.Method)
	assert.Equal(t, "MozillaDeveloperNetwork", string(r.Body.Bytes))
}

func TestFromReaderNoBody(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n"
	r, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)

	assert.Equal(t, 0, r.Body.Len())
	assert.Equal(t, "localhost", r.Header.Headers.Get("Host"))
}

func TestFromReaderMalformedRequestLine(t *testing.T) {
	raw := "GET/x HTTP/1.1\r\n\r\n"
	_, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	assert.Error(t, err)
}

func TestFromReaderUnknownMethodFails(t *testing.T) {
	raw := "FROB /x HTTP/1.1\r\n\r\n"
	_, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	assert.Error(t, err)
}

func TestFromReaderMalformedHeaderFails(t *testing.T) {
	raw := "GET /x HTTP/1.1\r\nNoColon\r\n\r\n"
	_, err := FromReader(bufio.NewReader(strings.NewReader(raw)))
	assert.Error(t, err)
}

func TestDefaultRequestHeader(t *testing.T) {
	h := DefaultRequestHeader()

	assert.Equal(t, method.GET, h.RequestLine.Method)
	assert.Equal(t, "/", h.RequestLine.Target)
	assert.Equal(t, "1.1", h.RequestLine.Version.String())
}
