package routerhandlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/strandhttp/strand/router"
)

// ErrNoAuthSource is returned when BasicAuthConfig has no credential
// source configured.
var ErrNoAuthSource = errors.New("basic auth: at least one of ValidateFunc, Credentials or BcryptCredentials must be set")

// BasicAuthConfig configures the Basic Auth middleware behaviour.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc7617
type BasicAuthConfig struct {
	// Realm is the authentication realm sent in the WWW-Authenticate
	// header. Defaults to "Restricted" when empty.
	Realm string

	// ValidateFunc is called to validate credentials dynamically.
	// Takes priority over the static credential maps when set.
	ValidateFunc func(username, password string) bool

	// Credentials is a static map of username -> plaintext password
	// pairs. Compared using SHA-256 hashed constant-time comparison to
	// prevent timing attacks, including length-based leaks.
	Credentials map[string]string

	// BcryptCredentials is a static map of username -> bcrypt password
	// hash pairs, for configurations that must not hold plaintext
	// passwords. Checked after Credentials when both are set.
	BcryptCredentials map[string]string
}

// BasicAuthMiddleware returns a middleware that implements HTTP Basic
// Authentication per RFC 7617. It validates the Authorization header
// and responds with a 401 JSON error when credentials are missing or
// invalid, without continuing the chain.
//
// It returns ErrNoAuthSource when no credential source is configured.
func BasicAuthMiddleware(cfg BasicAuthConfig) (router.Middleware, error) {
	if cfg.ValidateFunc == nil && len(cfg.Credentials) == 0 && len(cfg.BcryptCredentials) == 0 {
		return nil, ErrNoAuthSource
	}

	realm := cfg.Realm
	if realm == "" {
		realm = "Restricted"
	}

	wwwAuthenticate := fmt.Sprintf("Basic realm=%q", realm)

	validate := cfg.ValidateFunc
	if validate == nil {
		credentials := cfg.Credentials
		bcryptCredentials := cfg.BcryptCredentials
		validate = func(username, password string) bool {
			if expected, exists := credentials[username]; exists {
				return constantTimeEqual(password, expected)
			}
			if hash, exists := bcryptCredentials[username]; exists {
				return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
			}
			// Compare against an empty value anyway so a missing
			// username costs the same as a wrong password.
			constantTimeEqual(password, "")
			return false
		}
	}

	return func(w http.ResponseWriter, r *http.Request, next func()) {
		username, password, ok := r.BasicAuth()
		if !ok || !validate(username, password) {
			w.Header().Set("WWW-Authenticate", wwwAuthenticate)
			router.Error(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		next()
	}, nil
}

// constantTimeEqual compares two strings in constant time by first
// hashing them with SHA-256. This prevents both value leaks and
// length-based timing leaks that raw ConstantTimeCompare would allow on
// different-length inputs.
func constantTimeEqual(a, b string) bool {
	aHash := sha256.Sum256([]byte(a))
	bHash := sha256.Sum256([]byte(b))

	return subtle.ConstantTimeCompare(aHash[:], bHash[:]) == 1
}
