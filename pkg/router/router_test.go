package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(v string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", v)
			next.ServeHTTP(w, r)
		})
	}
}

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupMiddlewareOrder(t *testing.T) {
	r := New()
	g := r.Group("/order", tag("group"))
	g.Get("/{id}", "order.show", ok, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order/42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, rec.Header().Values("X-Chain"))
}

func TestRoutesAndURL(t *testing.T) {
	r := New()
	p := r.Group("/product")
	p.Get("/", "product.index", ok)
	p.Get("/slug/{slug}", "product.slug", ok)
	p.Delete("/{id}", "product.destroy", ok)
	r.Get("/health", "health", ok)

	routes := r.Routes()
	require.Len(t, routes, 4)
	assert.Equal(t, Route{Method: http.MethodGet, Path: "/health", Name: "health"}, routes[0])
	assert.Equal(t, "/product", routes[1].Path)

	url, err := r.URL("product.slug", map[string]string{"slug": "red-mug"})
	require.NoError(t, err)
	assert.Equal(t, "/product/slug/red-mug", url)

	_, err = r.URL("product.destroy", nil)
	assert.Error(t, err)
	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestNotFoundHandler(t *testing.T) {
	r := New()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.Get("/a", "a", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/b", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
