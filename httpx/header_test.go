package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalHeaderKey(t *testing.T) {
	cases := map[string]string{
		"content-type":      "Content-Type",
		"Content-Type":      "Content-Type",
		"CONTENT-TYPE":      "Content-Type",
		"x-response-status": "X-Response-Status",
		"etag":              "Etag",
	}
	for in, want := range cases {
		assert.Equal(t, want, CanonicalHeaderKey(in))
	}
}

func TestHeaderAddPreservesDuplicatesAndOrder(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "1")
	h.Add("X-B", "2")
	h.Add("X-A", "3")

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"1", "3"}, h.Values("x-a"))

	var order []string
	h.Range(func(k, v string) bool {
		order = append(order, k+"="+v)
		return true
	})
	assert.Equal(t, []string{"X-A=1", "X-B=2", "X-A=3"}, order)
}

func TestHeaderSetReplacesAllExistingEntriesInPlace(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "1")
	h.Add("X-B", "2")
	h.Add("X-A", "3")
	h.Set("X-A", "new")

	assert.Equal(t, []string{"new"}, h.Values("X-A"))
	var order []string
	h.Range(func(k, v string) bool {
		order = append(order, k+"="+v)
		return true
	})
	assert.Equal(t, []string{"X-A=new", "X-B=2"}, order)
}

func TestHeaderSetOnAbsentKeyAppends(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "1")
	h.Set("X-B", "2")
	assert.Equal(t, "2", h.Get("X-B"))
}

func TestHeaderGetReturnsFirstValue(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "first")
	h.Add("X-A", "second")
	assert.Equal(t, "first", h.Get("X-A"))
	assert.Equal(t, "", h.Get("X-Missing"))
}

func TestHeaderDel(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "1")
	h.Add("X-B", "2")
	h.Del("X-A")
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "", h.Get("X-A"))
	assert.Equal(t, "2", h.Get("X-B"))
}

func TestHeaderCloneIsIndependent(t *testing.T) {
	h := NewHeader()
	h.Add("X-A", "1")
	c := h.Clone()
	c.Add("X-A", "2")
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, c.Len())
}

func TestHeaderCloneOfNilReturnsEmpty(t *testing.T) {
	var h *Header
	c := h.Clone()
	assert.Equal(t, 0, c.Len())
}
