package response

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpengine/status"
)

func TestBuilderSetsContentLength(t *testing.T) {
	r := NewBuilder().Body([]byte("hello")).Build()

	assert.Equal(t, "5", r.Header.Headers.Get("Content-Length"))
	assert.Equal(t, "hello", string(r.Body.Bytes))
}

func TestBuilderNoContentOmitsContentLength(t *testing.T) {
	r := NewBuilder().Status(status.NoContent).Build()

	assert.False(t, r.Header.Headers.Has("Content-Length"))
	assert.Equal(t, 0, r.Body.Len())
}

func TestEmptyResponderDefaultsTo200WithZeroContentLength(t *testing.T) {
	r, err := Empty().IntoResponse()
	require.NoError(t, err)

	assert.Equal(t, status.OK, r.Header.Status)
	assert.Equal(t, "0", r.Header.Headers.Get("Content-Length"))
	assert.Equal(t, 0, r.Body.Len())
}

func TestResponseBytesSerializesStatusLineHeadersAndBody(t *testing.T) {
	r := NewBuilder().
		Status(status.OK).
		Header("Content-Type", "text/plain").
		Body([]byte("Hello World!")).
		Build()

	raw := r.Bytes()
	assert.Contains(t, string(raw), "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, string(raw), "Content-Length: 12\r\n")
	assert.Contains(t, string(raw), "\r\n\r\nHello World!")
}

func TestFromReaderParsesStatusLineHeadersAndBody(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"
	r := bufio.NewReader(bytes.NewBufferString(raw))

	resp, err := FromReader(r)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Header.Status.Code)
	assert.Equal(t, "OK", resp.Header.Status.Reason)
	assert.Equal(t, "hello", string(resp.Body.Bytes))
}

func TestWriteToFlushes(t *testing.T) {
	r := NewBuilder().Body([]byte("ok")).Build()

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	require.NoError(t, r.WriteTo(w))
	assert.Contains(t, buf.String(), "ok")
}
