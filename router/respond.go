package router

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status code. The
// Content-Type header is set to "application/json" and the body is the
// exact JSON encoding of v, with no pretty-printing and no trailing
// newline. If encoding fails, an HTTP 500 Internal Server Error is
// written instead.
//
// JSON must be called at most once per request-response cycle. A second
// call is not guarded against here; the transport layer rejects the
// second status write.
func JSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

// Error writes a standard JSON error body of the form {"error":message}
// with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"error": message})
}
