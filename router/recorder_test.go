package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("records explicit status code", func(t *testing.T) {
		w := httptest.NewRecorder()
		rec := NewRecorder(w)

		rec.WriteHeader(http.StatusAccepted)
		assert.Equal(t, http.StatusAccepted, rec.Status())
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.True(t, rec.Written())
	})

	t.Run("defaults to 200 when only a body is written", func(t *testing.T) {
		w := httptest.NewRecorder()
		rec := NewRecorder(w)

		n, err := rec.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusOK, rec.Status())
		assert.Equal(t, 5, rec.BytesWritten())
	})

	t.Run("accumulates bytes across writes", func(t *testing.T) {
		rec := NewRecorder(httptest.NewRecorder())
		rec.Write([]byte("ab"))
		rec.Write([]byte("cde"))
		assert.Equal(t, 5, rec.BytesWritten())
	})

	t.Run("keeps the first status on duplicate WriteHeader", func(t *testing.T) {
		rec := NewRecorder(httptest.NewRecorder())
		rec.WriteHeader(http.StatusCreated)
		rec.WriteHeader(http.StatusInternalServerError)
		assert.Equal(t, http.StatusCreated, rec.Status())
	})

	t.Run("not written before any call", func(t *testing.T) {
		rec := NewRecorder(httptest.NewRecorder())
		assert.False(t, rec.Written())
	})
}

func TestRecorderOf(t *testing.T) {
	t.Run("recovers the recorder from the writer", func(t *testing.T) {
		rec := NewRecorder(httptest.NewRecorder())
		got, ok := RecorderOf(rec)
		assert.True(t, ok)
		assert.Same(t, rec, got)
	})

	t.Run("plain writer is not a recorder", func(t *testing.T) {
		_, ok := RecorderOf(httptest.NewRecorder())
		assert.False(t, ok)
	})

	t.Run("middleware sees the dispatcher's recorder", func(t *testing.T) {
		r := New()
		var status int
		r.UseGlobal(func(w http.ResponseWriter, _ *http.Request, next func()) {
			next()
			rec, ok := RecorderOf(w)
			require.True(t, ok)
			status = rec.Status()
		})
		r.Get("/x", func(w http.ResponseWriter, _ *http.Request) {
			JSON(w, http.StatusTeapot, map[string]bool{"tea": true})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusTeapot, status)
	})
}
