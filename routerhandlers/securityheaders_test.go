package routerhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandhttp/strand/router"
)

func securityHeadersRouter(t *testing.T, cfg SecurityHeadersConfig) *router.Router {
	t.Helper()

	mw, err := SecurityHeadersMiddleware(cfg)
	require.NoError(t, err)

	r := router.New()
	r.UseGlobal(mw)
	r.Get("/x", func(w http.ResponseWriter, _ *http.Request) {
		router.JSON(w, http.StatusOK, nil)
	})
	return r
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	t.Run("rejects invalid frame option", func(t *testing.T) {
		_, err := SecurityHeadersMiddleware(SecurityHeadersConfig{FrameOption: "ALLOW-ALL"})
		assert.ErrorIs(t, err, ErrInvalidFrameOption)
	})

	t.Run("sets defaults", func(t *testing.T) {
		r := securityHeadersRouter(t, SecurityHeadersConfig{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("hsts with subdomains", func(t *testing.T) {
		r := securityHeadersRouter(t, SecurityHeadersConfig{
			HSTSMaxAge:            31536000,
			HSTSIncludeSubDomains: true,
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("nosniff can be disabled", func(t *testing.T) {
		r := securityHeadersRouter(t, SecurityHeadersConfig{DisableContentTypeNosniff: true})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Empty(t, w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("content security policy is passed through", func(t *testing.T) {
		r := securityHeadersRouter(t, SecurityHeadersConfig{ContentSecurityPolicy: "default-src 'self'"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	})
}
