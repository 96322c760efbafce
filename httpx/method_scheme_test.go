package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodToWasiRoundTrips(t *testing.T) {
	for _, m := range []string{MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete, MethodConnect, MethodOptions, MethodTrace, MethodPatch} {
		assert.Equal(t, m, methodFromWasi(methodToWasi(m)))
	}
}

func TestMethodToWasiDefaultsEmptyToGet(t *testing.T) {
	assert.Equal(t, MethodGet, methodFromWasi(methodToWasi("")))
}

func TestMethodToWasiHandlesNonStandardMethod(t *testing.T) {
	assert.Equal(t, "PROPFIND", methodFromWasi(methodToWasi("PROPFIND")))
}

func TestSchemeToWasiRoundTrips(t *testing.T) {
	assert.Equal(t, SchemeHTTP, schemeFromWasi(schemeToWasi(SchemeHTTP)))
	assert.Equal(t, SchemeHTTPS, schemeFromWasi(schemeToWasi(SchemeHTTPS)))
}

func TestSchemeToWasiDefaultsEmptyToHTTPS(t *testing.T) {
	assert.Equal(t, SchemeHTTPS, schemeFromWasi(schemeToWasi("")))
}

func TestSchemeToWasiHandlesNonStandardScheme(t *testing.T) {
	assert.Equal(t, "ws", schemeFromWasi(schemeToWasi("ws")))
}
