package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(_ http.ResponseWriter, _ *http.Request) {}

func TestRouteTableRegister(t *testing.T) {
	t.Run("appends routes in order", func(t *testing.T) {
		var table routeTable
		table.register(http.MethodGet, "/a", noopHandler, nil)
		table.register(http.MethodPost, "/b", noopHandler, nil)
		require.Len(t, table.routes, 2)
		assert.Equal(t, "/a", table.routes[0].Template())
		assert.Equal(t, "/b", table.routes[1].Template())
	})

	t.Run("uppercases the method", func(t *testing.T) {
		var table routeTable
		route := table.register("get", "/a", noopHandler, nil)
		assert.Equal(t, http.MethodGet, route.Method())
	})

	t.Run("records compile error on the route", func(t *testing.T) {
		var table routeTable
		route := table.register(http.MethodGet, "/bad(", noopHandler, nil)
		assert.Error(t, route.Err())
	})
}

func TestRouteTableFindMatch(t *testing.T) {
	t.Run("matches method and path", func(t *testing.T) {
		var table routeTable
		want := table.register(http.MethodGet, "/users/$id", noopHandler, nil)
		got := table.findMatch(http.MethodGet, "/users/42")
		assert.Same(t, want, got)
	})

	t.Run("method mismatch is no match", func(t *testing.T) {
		var table routeTable
		table.register(http.MethodGet, "/users/$id", noopHandler, nil)
		assert.Nil(t, table.findMatch(http.MethodPost, "/users/42"))
	})

	t.Run("first registered route wins", func(t *testing.T) {
		var table routeTable
		first := table.register(http.MethodGet, "/a/$x", noopHandler, nil)
		table.register(http.MethodGet, "/a/fixed", noopHandler, nil)
		got := table.findMatch(http.MethodGet, "/a/fixed")
		assert.Same(t, first, got)
	})

	t.Run("duplicate registrations are independent entries", func(t *testing.T) {
		var table routeTable
		first := table.register(http.MethodGet, "/dup", noopHandler, nil)
		second := table.register(http.MethodGet, "/dup", noopHandler, nil)
		require.NotSame(t, first, second)
		assert.Same(t, first, table.findMatch(http.MethodGet, "/dup"))
	})

	t.Run("skips routes with compile errors", func(t *testing.T) {
		var table routeTable
		table.register(http.MethodGet, "/bad(", noopHandler, nil)
		ok := table.register(http.MethodGet, "/good", noopHandler, nil)
		assert.Same(t, ok, table.findMatch(http.MethodGet, "/good"))
		assert.Nil(t, table.findMatch(http.MethodGet, "/bad("))
	})
}

func TestRouteTableAttachMiddleware(t *testing.T) {
	mw := func(_ http.ResponseWriter, _ *http.Request, next func()) { next() }

	t.Run("appends to the route with the exact template", func(t *testing.T) {
		var table routeTable
		route := table.register(http.MethodGet, "/users/$id", noopHandler, nil)
		table.attachMiddleware("/users/$id", mw)
		assert.Len(t, route.middlewares, 1)
	})

	t.Run("attaches to the first route regardless of method", func(t *testing.T) {
		// Attachment is keyed on the template string alone. When the
		// same template is registered under several methods, only the
		// earliest registration receives the middleware.
		var table routeTable
		getRoute := table.register(http.MethodGet, "/items", noopHandler, nil)
		postRoute := table.register(http.MethodPost, "/items", noopHandler, nil)
		table.attachMiddleware("/items", mw)
		assert.Len(t, getRoute.middlewares, 1)
		assert.Empty(t, postRoute.middlewares)
	})

	t.Run("unknown template is a silent no-op", func(t *testing.T) {
		var table routeTable
		route := table.register(http.MethodGet, "/a", noopHandler, nil)
		table.attachMiddleware("/missing", mw)
		assert.Empty(t, route.middlewares)
	})

	t.Run("template must match literally", func(t *testing.T) {
		var table routeTable
		route := table.register(http.MethodGet, "/users/$id", noopHandler, nil)
		table.attachMiddleware("/users/42", mw)
		assert.Empty(t, route.middlewares)
	})
}

func TestRouteUse(t *testing.T) {
	t.Run("appends middleware after creation", func(t *testing.T) {
		var table routeTable
		route := table.register(http.MethodGet, "/a", noopHandler, nil)
		route.Use(func(_ http.ResponseWriter, _ *http.Request, next func()) { next() })
		route.Use(func(_ http.ResponseWriter, _ *http.Request, next func()) { next() })
		assert.Len(t, route.middlewares, 2)
	})
}
