package routerhandlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/strandhttp/strand/router"
)

// ANSI escape sequences for colored console output.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[1;31m"
	colorGreen   = "\033[1;32m"
	colorYellow  = "\033[1;33m"
	colorBlue    = "\033[1;34m"
	colorMagenta = "\033[1;35m"
)

// AccessLogConfig configures the access log middleware behaviour.
type AccessLogConfig struct {
	// Output is the destination for log lines. Defaults to os.Stdout.
	Output io.Writer

	// Color forces colored output on or off. When nil, colors are
	// enabled only when Output is a terminal.
	Color *bool

	// TimeFormat overrides the timestamp layout. Defaults to
	// "2006/01/02 15:04:05".
	TimeFormat string
}

// AccessLogMiddleware returns a middleware that writes one line per
// completed request: timestamp, method, status, path and duration.
// On a terminal the method is colored magenta, the path blue, and the
// status by class: green for 2xx, yellow for 4xx, red otherwise.
//
// The status code is read from the dispatcher's response recorder after
// the rest of the chain has run.
func AccessLogMiddleware(cfg AccessLogConfig) router.Middleware {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006/01/02 15:04:05"
	}

	var color bool
	if cfg.Color != nil {
		color = *cfg.Color
	} else if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return func(w http.ResponseWriter, r *http.Request, next func()) {
		start := time.Now()
		next()

		status := http.StatusOK
		if rec, ok := router.RecorderOf(w); ok {
			status = rec.Status()
		}

		elapsed := time.Since(start)
		timestamp := start.Format(timeFormat)

		if color {
			fmt.Fprintf(out, "%s | %s%s%s | %s%d%s | %s%s%s | %v\n",
				timestamp,
				colorMagenta, r.Method, colorReset,
				statusColor(status), status, colorReset,
				colorBlue, r.URL.Path, colorReset,
				elapsed,
			)
		} else {
			fmt.Fprintf(out, "[%s] %s | %d | %s | %v\n",
				timestamp, r.Method, status, r.URL.Path, elapsed)
		}
	}
}

// statusColor returns the ANSI color for a status code class.
func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 400 && status < 500:
		return colorYellow
	default:
		return colorRed
	}
}
