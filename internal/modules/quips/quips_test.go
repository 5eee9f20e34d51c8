package quips

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

func serve(t *testing.T, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestQuipExtraction(t *testing.T) {
	client := netclient.NewClient(2 * time.Second)
	cases := []struct {
		module *Module
		body   string
		want   string
	}{
		{NewQuote(client), `{"content":"Know thyself","author":"Socrates"}`, `"Know thyself"`},
		{NewJoke(client), `{"setup":"knock knock","punchline":"who"}`, "knock knock"},
		{NewAdvice(client), `{"slip":{"id":1,"advice":"Sleep more"}}`, "Sleep more"},
		{NewCat(client), `{"fact":"Cats sleep a lot","length":16}`, "Cats sleep a lot"},
	}
	for _, tc := range cases {
		tc.module.BaseURL = serve(t, tc.body)
		if err := tc.module.Init(context.Background()); err != nil {
			t.Fatalf("%s init: %v", tc.module.Name(), err)
		}
		lines, err := tc.module.Execute(context.Background(), nil)
		if err != nil {
			t.Fatalf("%s execute: %v", tc.module.Name(), err)
		}
		if len(lines) == 0 || lines[0] != tc.want {
			t.Fatalf("%s: unexpected lines %#v", tc.module.Name(), lines)
		}
	}
}

func TestQuipNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewQuote(netclient.NewClient(2 * time.Second))
	m.BaseURL = srv.URL
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	_, err := m.Execute(context.Background(), nil)
	var netErr *netclient.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestQuipMissingFieldUsesPlaceholder(t *testing.T) {
	m := NewCat(netclient.NewClient(2 * time.Second))
	m.BaseURL = serve(t, `{}`)
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	lines, err := m.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(lines) != 1 || lines[0] != core.Placeholder {
		t.Fatalf("expected placeholder, got %#v", lines)
	}
}
