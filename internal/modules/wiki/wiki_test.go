package wiki

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"upb/internal/core"
	"upb/internal/netclient"
)

func TestSearchJoinsTermsWithUnderscore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Ada_Lovelace" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"title":"Ada Lovelace","extract":"Mathematician.","content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Ada_Lovelace"}}}`))
	}))
	defer srv.Close()

	m := &Module{Client: netclient.NewClient(2 * time.Second), BaseURL: srv.URL}
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	lines, err := m.Execute(context.Background(), []string{"Ada", "Lovelace"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(lines) != 3 || lines[0] != "Ada Lovelace" || lines[1] != "Mathematician." {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}

func TestSearchNoArgsIsUsageError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	m := &Module{Client: netclient.NewClient(2 * time.Second), BaseURL: srv.URL}
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	_, err := m.Execute(context.Background(), nil)
	var usageErr *core.UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("usage error must not hit the network, got %d calls", calls)
	}
}
