package router

import "net/http"

// Router matches incoming requests to registered routes and runs the
// middleware chain for the match. It implements http.Handler, so it can
// be passed directly to an HTTP server:
//
//	r := router.New()
//	r.Get("/users/$id", handler)
//	http.ListenAndServe(":8080", r)
//
// The route table and global middleware list are meant to be populated
// once at startup. Registration is not synchronized with request
// handling; register everything before serving traffic.
type Router struct {
	// NotFoundHandler is called when no route matches. If nil, a 404
	// response with the body {"error":"Not Found"} is written.
	NotFoundHandler http.Handler

	table  routeTable
	global []Middleware
}

// New returns a new router with no routes and no global middleware.
func New() *Router {
	return &Router{}
}

// Get registers a handler for GET requests matching the path template.
func (r *Router) Get(path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.Handle(http.MethodGet, path, handler, mws...)
}

// Post registers a handler for POST requests matching the path template.
func (r *Router) Post(path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.Handle(http.MethodPost, path, handler, mws...)
}

// Put registers a handler for PUT requests matching the path template.
func (r *Router) Put(path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.Handle(http.MethodPut, path, handler, mws...)
}

// Delete registers a handler for DELETE requests matching the path
// template.
func (r *Router) Delete(path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.Handle(http.MethodDelete, path, handler, mws...)
}

// Patch registers a handler for PATCH requests matching the path
// template.
func (r *Router) Patch(path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.Handle(http.MethodPatch, path, handler, mws...)
}

// Handle registers a handler for an arbitrary HTTP method. The returned
// route can be used to append per-route middleware or to inspect a
// template compilation error; a route whose template fails to compile
// never matches.
func (r *Router) Handle(method, path string, handler HandlerFunc, mws ...Middleware) *Route {
	return r.table.register(method, path, handler, mws)
}

// UseGlobal appends middleware to the global chain, which runs for
// every matched request before the route's own middleware.
func (r *Router) UseGlobal(mws ...Middleware) {
	r.global = append(r.global, mws...)
}

// Use appends middleware to the first route registered with exactly the
// given path template, regardless of method. When two routes share a
// template under different methods, the one registered first receives
// the middleware. When no route has the template, the call is a silent
// no-op.
func (r *Router) Use(path string, mw Middleware) {
	r.table.attachMiddleware(path, mw)
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.table.routes
}

// ServeHTTP dispatches the request through the pipeline: match the
// route, run the global chain, extract placeholder values, run the
// route chain, buffer and decode the body for mutating methods, then
// invoke the handler. The query string plays no part in matching.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	route := r.table.findMatch(req.Method, req.URL.Path)
	if route == nil {
		if r.NotFoundHandler != nil {
			r.NotFoundHandler.ServeHTTP(w, req)
			return
		}
		Error(w, http.StatusNotFound, "Not Found")
		return
	}

	rec := NewRecorder(w)
	st := &requestState{route: route}
	req = withState(req, st)

	runChain(rec, req, r.global, func() {
		st.params = route.pattern.extract(req.URL.Path)
		runChain(rec, req, route.middlewares, func() {
			if bufferBody(req.Method) {
				st.body, st.rawBody = readBody(req)
			}
			route.handler(rec, req)
		})
	})
}
