package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/wstd/runtime"
)

func TestMuxExactMatchPreferredOverPrefix(t *testing.T) {
	m := NewMux()
	var hitExact, hitPrefix bool
	m.Handle("/echo", func(_ *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		hitExact = true
		return NewResponse(200, Empty()), nil
	})
	m.Handle("/", func(_ *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		hitPrefix = true
		return NewResponse(200, Empty()), nil
	})

	h, ok := m.Handler("/echo")
	require.True(t, ok)
	_, _ = h(nil, &Request[Body]{Path: "/echo"})
	assert.True(t, hitExact)
	assert.False(t, hitPrefix)
}

func TestMuxLongestPrefixWins(t *testing.T) {
	m := NewMux()
	var hitRoot, hitSub bool
	m.Handle("/", func(_ *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		hitRoot = true
		return NewResponse(200, Empty()), nil
	})
	m.Handle("/api/", func(_ *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		hitSub = true
		return NewResponse(200, Empty()), nil
	})

	h, ok := m.Handler("/api/widgets")
	require.True(t, ok)
	_, _ = h(nil, &Request[Body]{Path: "/api/widgets"})
	assert.True(t, hitSub)
	assert.False(t, hitRoot)
}

func TestMuxStripsQueryStringBeforeMatching(t *testing.T) {
	m := NewMux()
	m.Handle("/response-status", func(_ *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		return NewResponse(200, Empty()), nil
	})
	_, ok := m.Handler("/response-status?x=1")
	assert.True(t, ok)
}

func TestMuxServeHandlerReturns404OnNoMatch(t *testing.T) {
	m := NewMux()
	resp, err := m.ServeHandler()(nil, &Request[Body]{Path: "/nope"})
	require.NoError(t, err)
	assert.EqualValues(t, 404, resp.Status)
}
