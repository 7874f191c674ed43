package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

// doerFunc adapts a function to the Doer interface for transport stubs.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func okJSON(body string) *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.baseURL != DefaultBaseURL {
		t.Fatalf("baseURL = %q", c.baseURL)
	}
	// Transport resolution is deferred to call time.
	if c.transport != nil {
		t.Fatalf("expected nil transport before first request")
	}
}

func TestNew_OptionErrorSurfaces(t *testing.T) {
	if _, err := New(WithBaseURL("")); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if _, err := New(WithTransport(nil)); err == nil {
		t.Fatal("expected error for nil transport")
	}
}

func TestClient_IdentityHeadersOnEveryOperation(t *testing.T) {
	var urls []string
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("X-Platform"); got != "linux" {
			t.Errorf("%s: X-Platform = %q", req.URL.Path, got)
		}
		if got := req.Header.Get("X-App-Version"); got != "2.0.0" {
			t.Errorf("%s: X-App-Version = %q", req.URL.Path, got)
		}
		urls = append(urls, req.URL.Path)
		return okJSON(`{}`), nil
	})
	c, err := New(
		WithBaseURL("http://api.test"),
		WithTransport(stub),
		WithPlatform("linux"),
		WithAppVersion("2.0.0"),
		// Override attempts for the identity headers must be overwritten.
		WithHeader("X-Platform", "windows"),
		WithHeader("X-App-Version", "9.9.9"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := c.ListExtensions(ctx, nil); return err },
		func() error { _, err := c.GetExtension(ctx, "foo"); return err },
		func() error { _, err := c.ListCategories(ctx); return err },
		func() error { _, err := c.GetDownloadURL(ctx, "foo", ""); return err },
		func() error { _, err := c.ListVersions(ctx, "foo"); return err },
		func() error { _, err := c.ListReviews(ctx, "foo", nil); return err },
		func() error { _, err := c.Health(ctx); return err },
	}
	for i, call := range calls {
		if err := call(); err != nil {
			t.Fatalf("operation %d: %v", i, err)
		}
	}
	if len(urls) != len(calls) {
		t.Fatalf("transport invoked %d times for %d operations", len(urls), len(calls))
	}
}

func TestClient_BaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotURL string
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return okJSON(`{}`), nil
	})
	c, err := New(WithBaseURL("http://api.test/v1/"), WithTransport(stub))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if gotURL != "http://api.test/v1/health" {
		t.Fatalf("url = %q", gotURL)
	}
}

func TestClient_APIErrorAtCallSite(t *testing.T) {
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{"error":"not found"}`)),
			Header:     make(http.Header),
		}, nil
	})
	c, err := New(WithBaseURL("http://api.test"), WithTransport(stub))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.GetExtension(context.Background(), "missing")
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Message != "not found" || apiErr.StatusCode != 404 {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound must report true")
	}
}
