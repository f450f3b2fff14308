package router

import (
	"encoding/json"
	"io"
	"net/http"
)

// bufferBody reports whether the request method conventionally carries
// a body. Retrieval methods are excluded: their bodies are never read
// or decoded, even when present.
func bufferBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return false
	}
	return true
}

// readBody drains the request body and decodes the accumulated bytes as
// JSON into a generic value. Malformed JSON degrades to an empty
// object; it is never surfaced as an error to the handler or client.
func readBody(r *http.Request) (any, []byte) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{}, raw
	}

	return v, raw
}
