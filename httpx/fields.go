package httpx

import (
	"errors"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/http/types"
)

// headerToFields builds a host Fields resource from an ordered Header,
// preserving both insertion order and duplicate names (spec.md §3.5).
func headerToFields(h *Header) (types.Fields, error) {
	f := types.NewFields()
	var err *Error
	h.Range(func(key, value string) bool {
		res := f.Append(key, cm.ToList([]byte(value)))
		if res.IsErr() {
			err = invalidHeader(key, errors.New(res.Err().String()))
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	return f, nil
}

// fieldsToHeader converts a host Fields resource into an ordered Header,
// in the order the host's entries() call returned them.
func fieldsToHeader(f types.Fields) *Header {
	h := NewHeader()
	for _, entry := range f.Entries().Slice() {
		h.Add(entry.F0, string(entry.F1.Slice()))
	}
	return h
}
