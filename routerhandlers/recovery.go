package routerhandlers

import (
	"net/http"

	"github.com/strandhttp/strand/router"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the request and the
	// recovered value when a panic occurs. When nil, no logging is
	// performed.
	LogFunc func(r *http.Request, err any)
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// the rest of the chain and the handler. When a panic occurs it returns
// a 500 JSON error to the client, unless a response has already been
// started, and optionally invokes LogFunc.
func RecoveryMiddleware(cfg RecoveryConfig) router.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next func()) {
		defer func() {
			if err := recover(); err != nil {
				if cfg.LogFunc != nil {
					cfg.LogFunc(r, err)
				}

				if rec, ok := router.RecorderOf(w); ok && rec.Written() {
					return
				}
				router.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
		}()

		next()
	}
}
