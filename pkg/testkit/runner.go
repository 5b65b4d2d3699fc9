package testkit

import (
	"net/http"
	"strings"
	"testing"
)

// Run executes scenarios in order as subtests of t. Later scenarios see the
// writes of earlier ones.
func Run(t *testing.T, h http.Handler, scenarios []Scenario, vars Vars) {
	t.Helper()
	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			runScenario(t, h, s, vars)
		})
	}
}

// RunFile loads path and runs its scenarios.
func RunFile(t *testing.T, h http.Handler, path string, vars Vars) {
	t.Helper()
	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("%v", err)
	}
	Run(t, h, scenarios, vars)
}

func runScenario(t *testing.T, h http.Handler, s Scenario, vars Vars) {
	t.Helper()

	var body interface{}
	if len(s.Body) > 0 {
		body = vars.expand(string(s.Body))
	}

	rec := Do(t, h, strings.ToUpper(s.Method), vars.expand(s.URL), vars.expand(s.Token), body)
	AssertStatusCode(t, s, rec.Code)
	if len(s.Expect) > 0 {
		AssertJSONSubset(t, s, []byte(vars.expand(string(s.Expect))), rec.Body.Bytes())
	}
}
