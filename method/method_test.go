package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownMethods(t *testing.T) {
	m, err := Parse("GET")
	require.NoError(t, err)
	assert.Equal(t, GET, m)
}

func TestParseRejectsUnknownMethod(t *testing.T) {
	_, err := Parse("FROB")
	assert.Error(t, err)
}

func TestParseIsCaseSensitive(t *testing.T) {
	_, err := Parse("get")
	assert.Error(t, err)
}
