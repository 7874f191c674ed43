package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// doerFunc adapts a function to the Doer interface for transport stubs.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// errDoer simulates a network-level failure.
type errDoer struct{}

func (errDoer) Do(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// jsonResponse builds a canned *http.Response with the given status and body.
func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
