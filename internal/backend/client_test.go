package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	tm "github.com/twitsprout/tools/mock"

	gl "famgallery/pkg/gallery"
)

type staticTokens string

func (t staticTokens) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

type failingTokens struct{}

func (failingTokens) Token(ctx context.Context) (string, error) {
	return "", errors.New("not signed in")
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok-123"), tm.NopLogger)
	if _, err := c.ListMedia(context.Background(), gl.FilterAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestClientTokenFailureShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(srv.URL, failingTokens{}, tm.NopLogger)
	if _, err := c.ListMedia(context.Background(), gl.FilterAll); err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Error("request should not reach the backend without a token")
	}
}

func TestClientSurfacesDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"You do not have access to this album"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"), tm.NopLogger)
	_, err := c.GetAlbum(context.Background(), "album-1")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "You do not have access to this album" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
	if err.Error() != "You do not have access to this album" {
		t.Errorf("error string must be the detail verbatim: %q", err.Error())
	}
}

func TestClientErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"), tm.NopLogger)
	_, err := c.GetAlbum(context.Background(), "album-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Detail == "" {
		t.Error("detail should fall back to the HTTP status line")
	}
}

func TestClientHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"), tm.NopLogger)
	if err := c.DeleteMedia(context.Background(), "media-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientQueryParameters(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens("tok"), tm.NopLogger)
	if _, err := c.ListAlbums(context.Background(), "folder-9", gl.SortByName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/albums" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "folder_id=folder-9") || !strings.Contains(gotQuery, "sort_by=name") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"backend 404", &APIError{StatusCode: http.StatusNotFound, Detail: "Album not found"}, true},
		{"wrapped 404", errors.Wrap(&APIError{StatusCode: http.StatusNotFound}, "fetching album"), true},
		{"backend 403", &APIError{StatusCode: http.StatusForbidden}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPutObject(t *testing.T) {
	var gotMethod, gotContentType, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New("https://api.example.com", staticTokens("tok"), tm.NopLogger)
	err := c.PutObject(context.Background(), srv.URL+"/bucket/key", "image/jpeg", strings.NewReader("rawbytes"), 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s", gotMethod)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotAuth != "" {
		t.Error("presigned uploads must not carry the bearer token")
	}
	if diff := cmp.Diff("rawbytes", gotBody); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}

	t.Run("storage error status", func(t *testing.T) {
		srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv2.Close()
		err := c.PutObject(context.Background(), srv2.URL+"/bucket/key", "image/jpeg", strings.NewReader("x"), 1)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
