package xkcd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"upb/internal/core"
	"upb/internal/netclient"
)

func newTestModule(t *testing.T, handler http.HandlerFunc) (*Module, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := &Module{Client: netclient.NewClient(2 * time.Second), BaseURL: srv.URL}
	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return m, srv
}

func TestLatestComic(t *testing.T) {
	m, _ := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/info.0.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"num":500,"title":"A","alt":"b"}`))
	})
	lines, err := m.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(lines) == 0 || !strings.Contains(lines[0], "500") || !strings.Contains(lines[0], "A") {
		t.Fatalf("expected number and title in header, got %#v", lines)
	}
	if lines[1] != "b" {
		t.Fatalf("expected alt text, got %q", lines[1])
	}
}

func TestComicByNumber(t *testing.T) {
	m, _ := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/614/info.0.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"num":614,"title":"Woodpecker","alt":"beak"}`))
	})
	lines, err := m.Execute(context.Background(), []string{"614"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(lines[0], "#614") {
		t.Fatalf("expected #614 header, got %q", lines[0])
	}
}

func TestBadNumberIsUsageError(t *testing.T) {
	m, _ := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected for bad argument")
	})
	_, err := m.Execute(context.Background(), []string{"abc"})
	var usageErr *core.UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestMissingFieldsUsePlaceholder(t *testing.T) {
	m, _ := newTestModule(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"num":1}`))
	})
	lines, err := m.Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(lines[0], core.Placeholder) {
		t.Fatalf("expected placeholder title, got %q", lines[0])
	}
}
