package hn

import (
	"context"
	"fmt"
	"strconv"

	"upb/internal/core"
	"upb/internal/netclient"
)

const (
	defaultBaseURL = "https://hacker-news.firebaseio.com/v0"
	defaultCount   = 5
	maxCount       = 10
)

// Module показывает верхние новости в два шага: список id, затем сами статьи.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "hn" }
func (m *Module) Usage() string { return "hn [count]" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	count := defaultCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, core.NewUsageError(m)
		}
		count = n
	}
	if count > maxCount {
		count = maxCount
	}

	var ids []int64
	if err := m.Client.Fetch(ctx, m.BaseURL+"/topstories.json", &ids); err != nil {
		return nil, err
	}
	if len(ids) > count {
		ids = ids[:count]
	}

	lines := []string{fmt.Sprintf("Hacker News Top %d", len(ids))}
	for _, id := range ids {
		item, err := m.Client.FetchRecord(ctx, fmt.Sprintf("%s/item/%d.json", m.BaseURL, id))
		if err != nil {
			return nil, err
		}
		lines = append(lines,
			fmt.Sprintf("- %s (%s points)", item.Str("title"), item.NumStr("score")),
			"  "+item.Str("url"),
		)
	}
	return lines, nil
}
