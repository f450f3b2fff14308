package router

import (
	"context"
	"net/http"
)

// stateContextKey is an unexported type for the single context key.
type stateContextKey struct{}

// stateKey is the single context key used to store per-request state.
var stateKey = stateContextKey{}

// requestState carries per-request data filled in by the dispatcher as
// it advances: params after the global chain, body before the handler.
// The same pointer is visible to every chain step, so middleware can
// attach values without re-wrapping the request.
//
// A request is handled by a single logical flow of control, so the
// state is not synchronized.
type requestState struct {
	route   *Route
	params  map[string]string
	body    any
	rawBody []byte
	values  map[string]any
}

// withState stores the state in the request context, returning the
// modified request. Called once per request at dispatch start.
func withState(r *http.Request, st *requestState) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), stateKey, st))
}

// stateFrom returns the request state, or nil outside a dispatched
// request.
func stateFrom(r *http.Request) *requestState {
	st, _ := r.Context().Value(stateKey).(*requestState)
	return st
}

// Params returns the path placeholder values for the current request.
// It returns nil outside a dispatched request and inside global
// middleware, which runs before placeholder extraction.
func Params(r *http.Request) map[string]string {
	if st := stateFrom(r); st != nil {
		return st.params
	}
	return nil
}

// Param returns the value of a single placeholder by name and a boolean
// indicating whether the placeholder exists.
func Param(r *http.Request, name string) (string, bool) {
	if st := stateFrom(r); st != nil && st.params != nil {
		val, exists := st.params[name]
		return val, exists
	}
	return "", false
}

// Body returns the decoded JSON request body: a map, slice, string,
// float64, bool or nil, as produced by encoding/json. For methods that
// carry no body (GET, HEAD, DELETE) it returns nil. For a body that is
// not valid JSON it returns an empty object.
func Body(r *http.Request) any {
	if st := stateFrom(r); st != nil {
		return st.body
	}
	return nil
}

// RawBody returns the buffered request body bytes, or nil when the
// method carries no body or the body could not be read.
func RawBody(r *http.Request) []byte {
	if st := stateFrom(r); st != nil {
		return st.rawBody
	}
	return nil
}

// CurrentRoute returns the matched route for the current request, if
// any. This only works inside the chain of the matched route because
// the state is attached during dispatch.
func CurrentRoute(r *http.Request) *Route {
	if st := stateFrom(r); st != nil {
		return st.route
	}
	return nil
}

// Set attaches a named value to the current request, visible to later
// chain steps and the handler. It is a no-op outside a dispatched
// request. Values live exactly as long as the request.
func Set(r *http.Request, key string, value any) {
	st := stateFrom(r)
	if st == nil {
		return
	}
	if st.values == nil {
		st.values = make(map[string]any)
	}
	st.values[key] = value
}

// Get returns a value attached with Set and a boolean indicating
// whether the key exists.
func Get(r *http.Request, key string) (any, bool) {
	if st := stateFrom(r); st != nil && st.values != nil {
		val, exists := st.values[key]
		return val, exists
	}
	return nil, false
}

// SetParams sets placeholder values on the request, returning the
// modified request. This is intended for testing route handlers in
// isolation.
func SetParams(r *http.Request, params map[string]string) *http.Request {
	if st := stateFrom(r); st != nil {
		st.params = params
		return r
	}
	return withState(r, &requestState{params: params})
}

// SetBody sets the decoded body value on the request, returning the
// modified request. This is intended for testing route handlers in
// isolation.
func SetBody(r *http.Request, body any) *http.Request {
	if st := stateFrom(r); st != nil {
		st.body = body
		return r
	}
	return withState(r, &requestState{body: body})
}
