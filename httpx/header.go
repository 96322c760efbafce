/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Header is an ordered, duplicate-preserving multimap of HTTP field
// names to values (spec.md §3.5). Neither the standard library's
// net/http.Header nor the teacher's hdr.Header can serve this: both are
// backed by map[string][]string, which has no cross-key iteration order
// and silently loses the order two different field names were added in.
// wasi:http fields preserve exactly that order on the wire, so this type
// is a slice of entries instead, canonicalizing keys the same way
// hdr.CanonicalHeaderKey does.
package httpx

import "strings"

// field is one ordered (name, value) entry. Two entries may share a name.
type field struct {
	name  string
	value string
}

// Header is an ordered list of header fields. The zero value is an empty
// header ready to use.
type Header struct {
	fields []field
}

// NewHeader returns an empty Header.
func NewHeader() *Header {
	return &Header{}
}

// Add appends a (key, value) entry, canonicalizing key. Existing entries
// for the same key are left in place and order is preserved.
func (h *Header) Add(key, value string) {
	h.fields = append(h.fields, field{name: CanonicalHeaderKey(key), value: value})
}

// Set removes every existing entry for key and appends a single new one
// in its place, at the position of the first removed entry (or the end,
// if there was none).
func (h *Header) Set(key, value string) {
	key = CanonicalHeaderKey(key)
	insertAt := -1
	out := h.fields[:0]
	for _, f := range h.fields {
		if f.name == key {
			if insertAt < 0 {
				insertAt = len(out)
			}
			continue
		}
		out = append(out, f)
	}
	h.fields = out
	entry := field{name: key, value: value}
	if insertAt < 0 || insertAt > len(h.fields) {
		h.fields = append(h.fields, entry)
		return
	}
	h.fields = append(h.fields, field{})
	copy(h.fields[insertAt+1:], h.fields[insertAt:])
	h.fields[insertAt] = entry
}

// Get returns the first value associated with key, or "" if there is none.
func (h *Header) Get(key string) string {
	key = CanonicalHeaderKey(key)
	for _, f := range h.fields {
		if f.name == key {
			return f.value
		}
	}
	return ""
}

// Values returns every value associated with key, in insertion order.
func (h *Header) Values(key string) []string {
	key = CanonicalHeaderKey(key)
	var out []string
	for _, f := range h.fields {
		if f.name == key {
			out = append(out, f.value)
		}
	}
	return out
}

// Del removes every entry for key.
func (h *Header) Del(key string) {
	key = CanonicalHeaderKey(key)
	out := h.fields[:0]
	for _, f := range h.fields {
		if f.name != key {
			out = append(out, f)
		}
	}
	h.fields = out
}

// Len returns the total number of entries, counting duplicates.
func (h *Header) Len() int { return len(h.fields) }

// Range calls fn for every entry in wire order. fn returning false stops
// iteration early.
func (h *Header) Range(fn func(key, value string) bool) {
	for _, f := range h.fields {
		if !fn(f.name, f.value) {
			return
		}
	}
}

// Clone returns an independent copy of h.
func (h *Header) Clone() *Header {
	if h == nil {
		return NewHeader()
	}
	c := &Header{fields: make([]field, len(h.fields))}
	copy(c.fields, h.fields)
	return c
}

// CanonicalHeaderKey returns the canonical format of a header key,
// identical to net/http's rule: the first letter and any letter
// following a hyphen are upper case; the rest are lower case
// ("content-type" -> "Content-Type"). Keys that don't look like a valid
// header token are returned unchanged, matching hdr.CanonicalHeaderKey.
func CanonicalHeaderKey(s string) string {
	if isCanonical(s) {
		return s
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isAlnum := 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
		if !isAlnum && !strings.ContainsRune("!#$%&'*+-.^_`|~", rune(c)) {
			return s
		}
	}
	b := []byte(s)
	upper := true
	for i, c := range b {
		if c == '-' {
			upper = true
			continue
		}
		if upper && 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		} else if !upper && 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
		upper = false
	}
	return string(b)
}

func isCanonical(s string) bool {
	upper := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			upper = true
			continue
		}
		if upper {
			if c >= 'a' && c <= 'z' {
				return false
			}
		} else if c >= 'A' && c <= 'Z' {
			return false
		}
		upper = false
	}
	return true
}
