package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/extmarket/client-go/internal/types"
)

func TestListCategories_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/categories" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"categories":[{"slug":"themes","name":"Themes","extensionCount":42}]}`))
	}))
	defer srv.Close()
	got, err := ListCategories(context.Background(), Caller{HTTP: srv.Client(), BaseURL: srv.URL})
	if err != nil || len(got) != 1 {
		t.Fatalf("ListCategories unexpected: got=%+v err=%v", got, err)
	}
	if got[0].Slug != "themes" || got[0].ExtensionCount != 42 {
		t.Fatalf("category = %+v", got[0])
	}
}

func TestListCategories_ServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	_, err := ListCategories(context.Background(), Caller{HTTP: srv.Client(), BaseURL: srv.URL})
	apiErr, ok := types.AsAPIError(err)
	if !ok || apiErr.StatusCode != 500 {
		t.Fatalf("expected APIError 500, got %v", err)
	}
}
