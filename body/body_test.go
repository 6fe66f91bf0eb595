package body

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFixedLength(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("Hello World!"))

	b, err := ReadFixedLength(r, len("Hello World!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", string(b.Bytes))
	assert.Equal(t, 12, b.Len())
}

func TestReadFixedLengthShortBody(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("short"))

	_, err := ReadFixedLength(r, 100)
	assert.Error(t, err)
}

func TestReadChunked(t *testing.T) {
	raw := "4\r\nMozi\r\n" +
		"5\r\nllaDe\r\n" +
		"e\r\nveloperNetwork\r\n" +
		"0\r\n\r\n"
	r := bufio.NewReader(strings.NewReader(raw))

	b, err := ReadChunked(r)
	require.NoError(t, err)
	assert.Equal(t, "MozillaDeveloperNetwork", string(b.Bytes))
}

func TestReadChunkedEmpty(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("0\r\n\r\n"))

	b, err := ReadChunked(r)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestReadChunkedMalformedSize(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("zz\r\nbody\r\n0\r\n\r\n"))

	_, err := ReadChunked(r)
	assert.Error(t, err)
}

func TestReadChunkedMissingTrailingCRLF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("4\r\nabcdXXXX0\r\n\r\n"))

	_, err := ReadChunked(r)
	assert.Error(t, err)
}

func TestEmptyAndNew(t *testing.T) {
	assert.Equal(t, 0, Empty().Len())
	assert.Equal(t, "abc", string(New([]byte("abc")).Bytes))
}
