// Package graphql serves a graphql-go schema over HTTP.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
)

// NewSchema creates a query-only schema from a root object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// Request is the standard GraphQL-over-HTTP body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GET ?query= and POST JSON requests against schema. The
// result is written as the usual {"data": ..., "errors": [...]} object.
func Handler(schema graphql.Schema) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		switch r.Method {
		case http.MethodGet:
			req.Query = r.URL.Query().Get("query")
			req.OperationName = r.URL.Query().Get("operationName")
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeResult(w, http.StatusBadRequest, errorResult("malformed GraphQL request body"))
				return
			}
		default:
			w.Header().Set("Allow", "GET, POST")
			writeResult(w, http.StatusMethodNotAllowed, errorResult("GraphQL accepts GET and POST"))
			return
		}
		if req.Query == "" {
			writeResult(w, http.StatusBadRequest, errorResult("query is required"))
			return
		}

		res := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})
		if res.HasErrors() {
			logger.WithCtx(r.Context()).Debug("graphql errors", "count", len(res.Errors))
		}
		writeResult(w, http.StatusOK, res)
	})
}

func errorResult(msg string) *graphql.Result {
	return &graphql.Result{Errors: []gqlerrors.FormattedError{{Message: msg}}}
}

func writeResult(w http.ResponseWriter, status int, res *graphql.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res) //nolint:errcheck
}
