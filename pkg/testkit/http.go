package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Body is the decoded response envelope. Data stays raw so each test picks
// its own shape.
type Body struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *Pagination       `json:"pagination"`
	Errors     map[string]string `json:"errors"`
}

type Pagination struct {
	Page         int   `json:"page"`
	PerPage      int   `json:"perPage"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
}

// Do fires one request at h. body may be nil, a string, []byte, or any
// value that is marshalled to JSON. A non-empty token is sent as a Bearer
// credential.
func Do(t testing.TB, h http.Handler, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	case []byte:
		r = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Decode parses the envelope and checks that the transport status matches
// statusCode.
func Decode(t testing.TB, rec *httptest.ResponseRecorder) Body {
	t.Helper()
	var b Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), "body: %s", rec.Body.String())
	require.Equal(t, rec.Code, b.StatusCode, "transport status and statusCode differ")
	return b
}

// DecodeData decodes the envelope's data member into dest.
func DecodeData(t testing.TB, rec *httptest.ResponseRecorder, dest interface{}) Body {
	t.Helper()
	b := Decode(t, rec)
	require.NoError(t, json.Unmarshal(b.Data, dest), "data: %s", string(b.Data))
	return b
}
