// Package testkit holds helpers for API tests: an in-memory database,
// request/decode shortcuts, a JSON scenario runner and a mock HTTP
// transport for outbound calls.
//
// A scenario file is a JSON array; {{name}} placeholders in url and body are
// expanded from the Vars passed to the runner:
//
//	[
//	  {
//	    "name": "create category as admin",
//	    "method": "POST",
//	    "url": "/category",
//	    "token": "{{adminToken}}",
//	    "body": {"name": "Mugs", "slug": "mugs"},
//	    "expectedCode": 201,
//	    "expect": {"message": "Category created successfully"}
//	  }
//	]
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scenario is one request and its expected outcome.
type Scenario struct {
	Name         string            `json:"name"`
	Method       string            `json:"method"`
	URL          string            `json:"url"`
	Token        string            `json:"token"`
	Body         json.RawMessage   `json:"body"`
	ExpectedCode int               `json:"expectedCode"`

	// Expect is matched as a subset of the response envelope: every key it
	// names must be present with an equal value, extra keys are ignored.
	Expect json.RawMessage `json:"expect"`
}

// Vars fills {{name}} placeholders.
type Vars map[string]string

func (v Vars) expand(s string) string {
	for k, val := range v {
		s = strings.ReplaceAll(s, "{{"+k+"}}", val)
	}
	return s
}

// LoadScenarios reads a JSON array of scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var out []Scenario
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}
	for i := range out {
		if err := out[i].validate(); err != nil {
			return nil, fmt.Errorf("testkit: %q item %d: %w", abs, i, err)
		}
	}
	return out, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.URL == "" {
		return fmt.Errorf("url is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.Method == "" {
		s.Method = "GET"
	}
	return nil
}
