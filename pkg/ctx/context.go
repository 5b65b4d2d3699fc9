// Package ctx gives handlers a single *Context instead of the
// (http.ResponseWriter, *http.Request) pair:
//
//	func (pc *ProductController) Show(c *ctx.Context) {
//	    product, err := pc.products.FindOne(c.Context(), c.Param("id"))
//	    if err != nil {
//	        c.Fail(err)
//	        return
//	    }
//	    c.OK("Product retrieved successfully", product)
//	}
//
//	router.Get("/product/{id}", "product.show", ctx.Wrap(pc.Show))
package ctx

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/bind"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
	"github.com/shashiranjanraj/backoffice/pkg/response"
	"github.com/shashiranjanraj/backoffice/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter ("/product/{id}" -> c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Query returns a query-string value, "" when absent.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// Page reads page and perPage from the query string. On malformed values
// it writes a 400 and returns false.
func (c *Context) Page() (orm.Page, bool) {
	p, err := orm.ParsePage(c.Query("page"), c.Query("perPage"))
	if err != nil {
		response.BadRequest(c.W, err.Error())
		return orm.Page{}, false
	}
	return p, true
}

// Context returns the request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Claims returns the token claims stored by the auth guard.
func (c *Context) Claims() (*auth.Claims, bool) {
	return middleware.ClaimsFromCtx(c.R.Context())
}

// BindJSON decodes and validates the JSON body into dest. It writes a 400
// for a malformed body or a 422 for validation failures and returns false;
// callers return immediately in that case.
//
//	var input services.CreateProductInput
//	if !c.BindJSON(&input) {
//	    return
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		response.BadRequest(c.W, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		response.ValidationError(c.W, errs)
		return false
	}
	return true
}

func (c *Context) OK(message string, data any) {
	response.OK(c.W, message, data)
}

func (c *Context) Created(message string, data any) {
	response.Created(c.W, message, data)
}

func (c *Context) Paginated(message string, data any, p orm.Pagination) {
	response.Paginated(c.W, message, data, p)
}

// Error sends an envelope with the given status and message.
func (c *Context) Error(code int, message string) {
	response.Error(c.W, code, message)
}

// Fail maps a service error to its envelope.
func (c *Context) Fail(err error) {
	response.Fail(c.W, c.R, err)
}

func (c *Context) Forbidden() {
	response.Forbidden(c.W)
}
