package router

import "net/http"

// Recorder wraps an http.ResponseWriter and records the status code and
// number of body bytes written while forwarding everything to the
// wrapped writer. The dispatcher installs one per matched request, so
// observers such as access loggers and metrics collectors can read what
// a handler wrote without patching the writer itself.
type Recorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

// NewRecorder returns a Recorder forwarding to w. The recorded status
// defaults to 200, matching the implicit status of a handler that
// writes a body without calling WriteHeader.
func NewRecorder(w http.ResponseWriter) *Recorder {
	return &Recorder{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

// RecorderOf returns the Recorder wrapping w, if w is one. Middleware
// receives the dispatcher's Recorder as its ResponseWriter, so this is
// the way to read the recorded status after calling next.
func RecorderOf(w http.ResponseWriter) (*Recorder, bool) {
	rec, ok := w.(*Recorder)
	return rec, ok
}

// WriteHeader records the first status code written and forwards every
// call to the wrapped writer, which rejects duplicates on its own.
func (rec *Recorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

// Write forwards the body bytes and adds the written count to the
// running total.
func (rec *Recorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.wroteHeader = true
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// Status returns the recorded status code.
func (rec *Recorder) Status() int {
	return rec.status
}

// BytesWritten returns the number of body bytes written so far.
func (rec *Recorder) BytesWritten() int {
	return rec.bytes
}

// Written reports whether a status line or body has been written.
func (rec *Recorder) Written() bool {
	return rec.wroteHeader
}

// Flush forwards to the wrapped writer when it supports flushing.
func (rec *Recorder) Flush() {
	if f, ok := rec.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
