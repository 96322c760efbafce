package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyHintFromHeadersAbsent(t *testing.T) {
	h := NewHeader()
	hint, err := BodyHintFromHeaders(h)
	require.NoError(t, err)
	_, ok := hint.ContentLength()
	assert.False(t, ok)
}

func TestBodyHintFromHeadersPresent(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "42")
	hint, err := BodyHintFromHeaders(h)
	require.NoError(t, err)
	n, ok := hint.ContentLength()
	assert.True(t, ok)
	assert.EqualValues(t, 42, n)
}

func TestBodyHintFromHeadersInvalidErrors(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Length", "not-a-number")
	_, err := BodyHintFromHeaders(h)
	assert.Error(t, err)
}

func TestUnknownBodyHint(t *testing.T) {
	_, ok := UnknownBodyHint.ContentLength()
	assert.False(t, ok)
}
