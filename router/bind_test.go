package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestBindJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","email":"alice@example.com"}`))

		var in createUserRequest
		require.NoError(t, BindJSON(req, &in))
		assert.Equal(t, "alice", in.Name)
	})

	t.Run("rejects unknown fields by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","email":"a@b.co","extra":1}`))

		var in createUserRequest
		assert.Error(t, BindJSON(req, &in))
	})

	t.Run("allows unknown fields when requested", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","email":"a@b.co","extra":1}`))

		var in createUserRequest
		assert.NoError(t, BindJSON(req, &in, true))
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","email":"a@b.co"}{"again":true}`))

		var in createUserRequest
		assert.Error(t, BindJSON(req, &in, true))
	})

	t.Run("validates struct tags after decoding", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","email":"not-an-email"}`))

		var in createUserRequest
		assert.Error(t, BindJSON(req, &in))
	})

	t.Run("non-struct targets skip validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2,3]`))

		var in []int
		require.NoError(t, BindJSON(req, &in))
		assert.Equal(t, []int{1, 2, 3}, in)
	})

	t.Run("reuses the buffered body inside a dispatched request", func(t *testing.T) {
		r := New()
		r.Post("/users", func(w http.ResponseWriter, req *http.Request) {
			// The dispatcher has already drained the stream by now.
			var in createUserRequest
			require.NoError(t, BindJSON(req, &in))
			JSON(w, http.StatusCreated, map[string]string{"name": in.Name})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"bob","email":"bob@example.com"}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"name":"bob"}`, w.Body.String())
	})
}
