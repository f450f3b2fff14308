package routerhandlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/strandhttp/strand/router"
)

// requestIDValueKey is the request-store key under which the request ID
// is kept.
const requestIDValueKey = "request_id"

// RequestIDFromRequest returns the request ID stored by
// RequestIDMiddleware. Returns an empty string if no ID is present.
func RequestIDFromRequest(r *http.Request) string {
	if id, ok := router.Get(r, requestIDValueKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

// RequestIDConfig configures the Request ID middleware behaviour.
type RequestIDConfig struct {
	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// It receives the current request, allowing ID generation based on
	// request context. Defaults to GenerateUUIDv4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool
}

// RequestIDMiddleware returns a middleware that generates or propagates
// a request ID header. The ID is set on the request header and the
// response header, and stored on the request for later chain steps via
// RequestIDFromRequest.
func RequestIDMiddleware(cfg RequestIDConfig) router.Middleware {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	trustIncoming := cfg.TrustIncoming

	return func(w http.ResponseWriter, r *http.Request, next func()) {
		id := ""
		if trustIncoming {
			id = r.Header.Get(headerName)
		}

		if id == "" {
			id = generate(r)
		}

		if id != "" {
			r.Header.Set(headerName, id)
			w.Header().Set(headerName, id)
			router.Set(r, requestIDValueKey, id)
		}

		next()
	}
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. UUIDs are time-ordered:
// IDs generated later sort lexicographically after earlier ones.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
