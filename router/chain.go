package router

import "net/http"

// HandlerFunc handles a fully prepared request. By the time a handler
// runs, placeholder values are available through Params and, for
// buffered methods, the decoded body through Body.
type HandlerFunc func(http.ResponseWriter, *http.Request)

// Middleware is a single chain participant. It must call next exactly
// once to continue the chain, or write a response and return without
// calling next to stop it. This is a documented contract, not a guarded
// invariant: nothing prevents a middleware from calling next twice or
// from doing neither, in which case the request hangs until the client
// gives up.
//
// next may be invoked after the middleware function itself has
// returned, for example from a completion callback, as long as that
// happens before the server considers the request finished.
type Middleware func(w http.ResponseWriter, r *http.Request, next func())

// runChain executes middlewares in order starting at index zero and
// invokes terminal once the last middleware has called next. A fresh
// next closure is built per step, so middleware k+1 never starts before
// middleware k has called next and no middleware runs more than once
// per request. An empty chain invokes terminal directly.
func runChain(w http.ResponseWriter, r *http.Request, middlewares []Middleware, terminal func()) {
	var step func(int)
	step = func(i int) {
		if i >= len(middlewares) {
			terminal()
			return
		}
		middlewares[i](w, r, func() { step(i + 1) })
	}
	step(0)
}
