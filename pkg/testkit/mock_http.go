package testkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockTransport is an http.RoundTripper that answers outbound calls from a
// list of canned responses, for clients such as the S3 disk:
//
//	mt := testkit.NewMockTransport()
//	mt.On(http.MethodPut, "http://s3.test/bucket/", 200, "")
//	disk, _ := storage.NewS3(ctx, storage.S3Options{..., HTTPClient: mt.Client()})
type MockTransport struct {
	mu     sync.Mutex
	routes []mockRoute
	calls  []Call
}

type mockRoute struct {
	method string
	prefix string
	status int
	body   string
}

// Call is one recorded outbound request.
type Call struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

func NewMockTransport() *MockTransport { return &MockTransport{} }

// On answers requests whose method matches and whose URL starts with
// prefix. An empty method matches any.
func (mt *MockTransport) On(method, prefix string, status int, body string) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.routes = append(mt.routes, mockRoute{method: method, prefix: prefix, status: status, body: body})
	return mt
}

// Client wraps mt in an *http.Client.
func (mt *MockTransport) Client() *http.Client { return &http.Client{Transport: mt} }

// Calls returns the requests seen so far.
func (mt *MockTransport) Calls() []Call {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return append([]Call(nil), mt.calls...)
}

func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		body = string(raw)
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.calls = append(mt.calls, Call{Method: req.Method, URL: req.URL.String(), Header: req.Header.Clone(), Body: body})

	for _, r := range mt.routes {
		if r.method != "" && r.method != req.Method {
			continue
		}
		if !strings.HasPrefix(req.URL.String(), r.prefix) {
			continue
		}
		return &http.Response{
			Status:        fmt.Sprintf("%d %s", r.status, http.StatusText(r.status)),
			StatusCode:    r.status,
			Header:        http.Header{"Content-Type": []string{"application/xml"}},
			Body:          io.NopCloser(strings.NewReader(r.body)),
			ContentLength: int64(len(r.body)),
			Request:       req,
		}, nil
	}
	return nil, fmt.Errorf("testkit: unexpected %s %s", req.Method, req.URL)
}
