package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/wstd/runtime"
)

func TestEmptyBodyContents(t *testing.T) {
	b := Empty()
	data, err := b.Contents(nil)
	require.NoError(t, err)
	assert.Empty(t, data)
	n, ok := b.ContentLength()
	assert.True(t, ok)
	assert.EqualValues(t, 0, n)
}

func TestFromStringBodyContents(t *testing.T) {
	b := FromString("hello")
	data, err := b.Contents(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	str, err := b.StrContents(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", str)

	n, ok := b.ContentLength()
	assert.True(t, ok)
	assert.EqualValues(t, 5, n)
}

func TestFromJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	b, err := FromJSON(payload{Name: "wstd"})
	require.NoError(t, err)

	var out payload
	require.NoError(t, b.JSON(nil, &out))
	assert.Equal(t, "wstd", out.Name)
}

func TestFromFrameSourceBodyContentsConcatenatesDataAndCapturesTrailers(t *testing.T) {
	frames := []Frame{
		DataFrame([]byte("hello, ")),
		DataFrame([]byte("world")),
	}
	trailers := NewHeader()
	trailers.Set("X-Checksum", "abc")
	frames = append(frames, TrailerFrame(trailers))

	i := 0
	b := FromFrameSource(func(y *runtime.Yielder) (Frame, bool, error) {
		if i >= len(frames) {
			return Frame{}, false, nil
		}
		f := frames[i]
		i++
		return f, true, nil
	})

	data, err := b.Contents(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(data))
	assert.Equal(t, "abc", b.trailers.Get("X-Checksum"))
}

func TestAdaptedBodyContentLengthUnknown(t *testing.T) {
	b := FromFrameSource(func(y *runtime.Yielder) (Frame, bool, error) { return Frame{}, false, nil })
	_, ok := b.ContentLength()
	assert.False(t, ok)
}
