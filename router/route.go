package router

import "strings"

// Route is a registered (method, path template, handler, middleware)
// entry. Routes are created at registration time and live for the
// process lifetime; only the middleware list may grow after creation.
type Route struct {
	method      string
	template    string
	pattern     *pattern
	handler     HandlerFunc
	middlewares []Middleware
	err         error
}

// Method returns the HTTP method the route was registered for.
func (r *Route) Method() string {
	return r.method
}

// Template returns the path template the route was registered with.
func (r *Route) Template() string {
	return r.template
}

// Err returns the template compilation error, if any. A route with a
// compilation error never matches.
func (r *Route) Err() error {
	return r.err
}

// Use appends middleware to the route's own chain, which runs after the
// global chain for requests matching this route.
func (r *Route) Use(mws ...Middleware) *Route {
	r.middlewares = append(r.middlewares, mws...)
	return r
}

// routeTable is an ordered collection of routes with linear first-match
// lookup. Registration order defines route precedence.
type routeTable struct {
	routes []*Route
}

// register compiles the template and appends a new route. Duplicate
// registrations are not detected; each call appends an independent
// entry and the earlier one takes precedence during lookup.
func (t *routeTable) register(method, tpl string, handler HandlerFunc, mws []Middleware) *Route {
	route := &Route{
		method:      strings.ToUpper(method),
		template:    tpl,
		handler:     handler,
		middlewares: mws,
	}
	route.pattern, route.err = compilePattern(tpl)
	t.routes = append(t.routes, route)

	return route
}

// findMatch returns the first route, in registration order, whose
// method equals the request method and whose pattern accepts the path.
// Returns nil when no route matches.
func (t *routeTable) findMatch(method, path string) *Route {
	for _, route := range t.routes {
		if route.err != nil {
			continue
		}
		if route.method == method && route.pattern.match(path) {
			return route
		}
	}

	return nil
}

// attachMiddleware appends mw to the first route registered with
// exactly the given template string, regardless of method. When no
// route has that template, the call is a silent no-op.
func (t *routeTable) attachMiddleware(tpl string, mw Middleware) {
	for _, route := range t.routes {
		if route.template == tpl {
			route.middlewares = append(route.middlewares, mw)
			return
		}
	}
}
