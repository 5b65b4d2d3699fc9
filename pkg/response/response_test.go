package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type statusErr struct {
	status int
	msg    string
	fields map[string]string
}

func (e statusErr) Error() string                  { return e.msg }
func (e statusErr) StatusCode() int                { return e.status }
func (e statusErr) FieldErrors() map[string]string { return e.fields }

func TestPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	Paginated(rec, "Products retrieved successfully", []string{"a"}, orm.NewPagination(orm.Page{Page: 1, PerPage: 1}, 3))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"statusCode": 200,
		"message": "Products retrieved successfully",
		"data": ["a"],
		"pagination": {"page": 1, "perPage": 1, "totalRecords": 3, "totalPages": 3}
	}`, rec.Body.String())
}

func TestFail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/product/1", nil)

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"status error", statusErr{status: 404, msg: "Product not found"}, `{"statusCode":404,"message":"Product not found"}`},
		{"wrapped", fmt.Errorf("load: %w", statusErr{status: 409, msg: "Email already in use"}), `{"statusCode":409,"message":"Email already in use"}`},
		{"field errors", statusErr{status: 422, msg: "Invalid status", fields: map[string]string{"status": "bad"}},
			`{"statusCode":422,"message":"Invalid status","errors":{"status":"bad"}}`},
		{"unknown", errors.New("driver: connection reset"), `{"statusCode":500,"message":"Internal Server Error"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Fail(rec, req, c.err)
			assert.JSONEq(t, c.want, rec.Body.String())
		})
	}
}
