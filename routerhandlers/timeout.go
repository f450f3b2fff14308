package routerhandlers

import (
	"errors"
	"net/http"
	"time"
)

// ErrInvalidTimeout is returned when TimeoutConfig.Duration is not
// greater than zero.
var ErrInvalidTimeout = errors.New("timeout: duration must be greater than zero")

// TimeoutConfig configures the Timeout wrapper behaviour.
type TimeoutConfig struct {
	// Duration is the maximum time allowed for the request pipeline to
	// complete. Must be greater than zero.
	Duration time.Duration

	// Message is the response body returned on timeout. When empty,
	// a standard JSON error body is used.
	Message string
}

// Timeout wraps a handler, typically the router itself, with a
// deadline: when the pipeline does not complete within the configured
// duration the client receives 503 Service Unavailable and late writes
// are discarded. The router core has no timeout of its own, so a
// middleware that never calls next holds its request open forever
// unless a wrapper like this one is layered in.
//
// This is an outer wrapper rather than a chain middleware because it
// must substitute the response writer for the whole pipeline, which is
// built on http.TimeoutHandler.
//
// It returns ErrInvalidTimeout if Duration is not greater than zero.
func Timeout(next http.Handler, cfg TimeoutConfig) (http.Handler, error) {
	if cfg.Duration <= 0 {
		return nil, ErrInvalidTimeout
	}

	message := cfg.Message
	if message == "" {
		message = `{"error":"Service Unavailable"}`
	}

	return http.TimeoutHandler(next, cfg.Duration, message), nil
}
