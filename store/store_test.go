package store

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	client "github.com/extmarket/client-go"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func okJSON(body string) *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestStore(t *testing.T, stub client.Doer) *Store {
	t.Helper()
	c, err := client.New(client.WithBaseURL("http://api.test"), client.WithTransport(stub))
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return New(c)
}

func TestStore_LoadMirrorsResults(t *testing.T) {
	t.Parallel()
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		switch {
		case req.URL.Path == "/extensions":
			return okJSON(`{"extensions":[{"slug":"dark-theme"}],"pagination":{"page":1,"limit":20,"total":1,"totalPages":1}}`), nil
		case req.URL.Path == "/extensions/dark-theme":
			return okJSON(`{"slug":"dark-theme","name":"Dark Theme"}`), nil
		case req.URL.Path == "/categories":
			return okJSON(`{"categories":[{"slug":"themes"}]}`), nil
		default:
			return okJSON(`{}`), nil
		}
	})
	s := newTestStore(t, stub)
	ctx := context.Background()

	if s.Extensions() != nil || s.Extension() != nil || s.Categories() != nil {
		t.Fatal("fresh store must be empty")
	}

	list, err := s.LoadExtensions(ctx, nil)
	if err != nil {
		t.Fatalf("LoadExtensions: %v", err)
	}
	if s.Extensions() != list || len(s.Extensions().Extensions) != 1 {
		t.Fatalf("extensions not mirrored: %+v", s.Extensions())
	}

	if _, err := s.LoadExtension(ctx, "dark-theme"); err != nil {
		t.Fatalf("LoadExtension: %v", err)
	}
	if got := s.Extension(); got == nil || got.Name != "Dark Theme" {
		t.Fatalf("extension not mirrored: %+v", got)
	}

	if _, err := s.LoadCategories(ctx); err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if got := s.Categories(); len(got) != 1 || got[0].Slug != "themes" {
		t.Fatalf("categories not mirrored: %+v", got)
	}

	if s.Err() != nil {
		t.Fatalf("unexpected error slot: %v", s.Err())
	}
}

func TestStore_ErrorRecordedAndReturned(t *testing.T) {
	t.Parallel()
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{"error":"not found"}`)),
			Header:     make(http.Header),
		}, nil
	})
	s := newTestStore(t, stub)

	_, err := s.LoadExtension(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error to be returned")
	}
	if s.Err() != err {
		t.Fatalf("error slot = %v, want %v", s.Err(), err)
	}
	if s.Extension() != nil {
		t.Fatal("failed load must not mutate mirrored state")
	}
	if s.Loading() {
		t.Fatal("loading must be false after the call finishes")
	}

	s.ClearErr()
	if s.Err() != nil {
		t.Fatal("ClearErr must empty the slot")
	}
}

func TestStore_LoadingFlagDuringRequest(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	inFlight := make(chan struct{})
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		close(inFlight)
		<-release
		return okJSON(`{"status":"ok"}`), nil
	})
	s := newTestStore(t, stub)

	done := make(chan error, 1)
	go func() {
		_, err := s.LoadHealth(context.Background())
		done <- err
	}()

	<-inFlight
	if !s.Loading() {
		t.Error("loading must be true while a request is in flight")
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("LoadHealth: %v", err)
	}
	if s.Loading() {
		t.Fatal("loading must be false after completion")
	}
	if got := s.Health(); got == nil || got.Status != "ok" {
		t.Fatalf("health not mirrored: %+v", got)
	}
}

func TestStore_SubscribeAndCancel(t *testing.T) {
	t.Parallel()
	stub := doerFunc(func(req *http.Request) (*http.Response, error) {
		return okJSON(`{"status":"ok"}`), nil
	})
	s := newTestStore(t, stub)

	var mu sync.Mutex
	notified := 0
	cancel := s.Subscribe(func() {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	if _, err := s.LoadHealth(context.Background()); err != nil {
		t.Fatalf("LoadHealth: %v", err)
	}
	mu.Lock()
	afterLoad := notified
	mu.Unlock()
	if afterLoad == 0 {
		t.Fatal("subscriber not notified")
	}

	cancel()
	if _, err := s.LoadHealth(context.Background()); err != nil {
		t.Fatalf("LoadHealth: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if notified != afterLoad {
		t.Fatalf("canceled subscriber still notified: %d -> %d", afterLoad, notified)
	}
}
