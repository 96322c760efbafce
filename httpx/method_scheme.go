package httpx

import "github.com/badu/wstd/internal/wasip2/http/types"

// Standard method names, matching the wasi:http/types method variants this
// module distinguishes explicitly (spec.md §3.5).
const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodConnect = "CONNECT"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
	MethodPatch   = "PATCH"
)

func methodToWasi(m string) types.Method {
	switch m {
	case MethodGet, "":
		return types.MethodGet()
	case MethodHead:
		return types.MethodHead()
	case MethodPost:
		return types.MethodPost()
	case MethodPut:
		return types.MethodPut()
	case MethodDelete:
		return types.MethodDelete()
	case MethodConnect:
		return types.MethodConnect()
	case MethodOptions:
		return types.MethodOptions()
	case MethodTrace:
		return types.MethodTrace()
	case MethodPatch:
		return types.MethodPatch()
	default:
		return types.MethodOther(m)
	}
}

func methodFromWasi(m types.Method) string {
	return m.String()
}

// Scheme names.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

func schemeToWasi(s string) types.Scheme {
	switch s {
	case SchemeHTTP:
		return types.SchemeHTTP()
	case SchemeHTTPS, "":
		return types.SchemeHTTPS()
	default:
		return types.SchemeOther(s)
	}
}

func schemeFromWasi(s types.Scheme) string {
	return s.String()
}
