package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"upb/internal/core"
	"upb/internal/storage"
)

// Module показывает журнал последних выполненных команд.
type Module struct {
	Store        storage.Store
	DefaultLimit int
}

func (m *Module) Name() string  { return "history" }
func (m *Module) Usage() string { return "history [count]" }

func (m *Module) Init(ctx context.Context) error {
	if m.Store == nil {
		return errors.New("history store is nil")
	}
	if m.DefaultLimit <= 0 {
		m.DefaultLimit = 20
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	limit := m.DefaultLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, core.NewUsageError(m)
		}
		limit = n
	}
	entries, err := m.Store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(entries) == 0 {
		return []string{"history is empty"}, nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", e.TS.Format("2006-01-02 15:04:05"), e.Verb)
		if e.Args != "" {
			line += " " + e.Args
		}
		if e.Status != "ok" {
			line += "  [" + e.Status + "]"
		}
		lines = append(lines, line)
	}
	return lines, nil
}
