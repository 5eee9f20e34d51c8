package app

import (
	"context"
	"path/filepath"
	"testing"

	"upb/internal/config"
	"upb/pkg/logger"
)

func TestNewRegistersVerbCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

	a, err := New(context.Background(), "", cfg, logger.New("error"))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	want := []string{
		"search", "ddg", "xkcd", "hn",
		"quote", "joke", "advice", "cat",
		"weather", "define", "price", "stock",
		"time", "ip", "sys", "history",
	}
	for _, verb := range want {
		if _, ok := a.Registry.Lookup(verb); !ok {
			t.Fatalf("verb %s is not registered", verb)
		}
	}
}
