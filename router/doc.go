// Package router implements a small HTTP request router with
// continuation-passing middleware chains.
//
// Routes are registered per HTTP method with a path template. Templates
// may contain $name placeholders that capture a single path segment:
//
//	r := router.New()
//	r.Get("/users/$id", func(w http.ResponseWriter, req *http.Request) {
//	    id, _ := router.Param(req, "id")
//	    router.JSON(w, http.StatusOK, map[string]string{"id": id})
//	})
//	http.ListenAndServe(":8080", r)
//
// # Matching
//
// Each placeholder matches one or more characters excluding "/", so an
// empty path segment never matches. Routes are tried in registration
// order and the first route whose method and template both match wins;
// there is no specificity ranking. A request that matches no route
// receives a 404 response with the body {"error":"Not Found"}.
//
// Literal template text is embedded in the compiled matching expression
// verbatim. Characters that are special to regular expressions (such as
// "." or "+") keep their regexp meaning inside a template.
//
// # Middleware
//
// A middleware receives the response writer, the request, and a next
// function. It must call next exactly once to continue the chain, or
// write a response and return without calling next to stop it:
//
//	r.UseGlobal(func(w http.ResponseWriter, req *http.Request, next func()) {
//	    if req.Header.Get("X-Token") == "" {
//	        router.Error(w, http.StatusUnauthorized, "missing token")
//	        return
//	    }
//	    next()
//	})
//
// Global middleware runs for every matched request before the route's
// own middleware. Placeholder values are attached after the global
// chain completes, so Params returns nil inside global middleware.
//
// # Request Body
//
// For methods that conventionally carry a body (anything other than
// GET, HEAD and DELETE) the dispatcher buffers the full body before the
// handler runs and decodes it as JSON. A body that is not valid JSON
// degrades to an empty object; it is never an error. The decoded value
// is available through Body and the raw bytes through RawBody, or the
// body can be bound to a struct with BindJSON.
package router
