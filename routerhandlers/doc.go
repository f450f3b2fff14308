// Package routerhandlers provides middleware for the router package.
//
// Two shapes of middleware live here. Most are router.Middleware values
// in the router's continuation-passing style and run inside a route's
// chain:
//
//	r := router.New()
//	r.UseGlobal(routerhandlers.RequestIDMiddleware(routerhandlers.RequestIDConfig{}))
//	r.UseGlobal(routerhandlers.AccessLogMiddleware(routerhandlers.AccessLogConfig{}))
//	r.UseGlobal(routerhandlers.RecoveryMiddleware(routerhandlers.RecoveryConfig{}))
//
// Timeout and Tracing are outer wrappers of the form
// func(http.Handler) http.Handler instead. They need to replace the
// request context or the response writer for everything downstream,
// which a chain participant cannot do, so they wrap the router itself:
//
//	handler, err := routerhandlers.Timeout(r, routerhandlers.TimeoutConfig{Duration: 5 * time.Second})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", handler)
//
// Middleware that reports on the response, such as the access logger
// and the metrics collector, reads the recorded status code through
// router.RecorderOf after calling next. This assumes the rest of the
// chain completes before next returns, which holds for any chain that
// does not hand its next function to another goroutine.
package routerhandlers
