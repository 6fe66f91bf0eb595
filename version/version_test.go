package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptsFullAndBareForm(t *testing.T) {
	v, err := Parse("HTTP/1.1")
	require.NoError(t, err)
	assert.Equal(t, HTTP11, v)

	v, err = Parse("1.1")
	require.NoError(t, err)
	assert.Equal(t, HTTP11, v)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("garbage")
	assert.Error(t, err)
}

func TestStringPreservesOneFractionalDigit(t *testing.T) {
	assert.Equal(t, "1.1", HTTP11.String())
}
