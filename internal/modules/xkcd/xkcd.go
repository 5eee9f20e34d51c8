package xkcd

import (
	"context"
	"fmt"
	"strconv"

	"upb/internal/core"
	"upb/internal/netclient"
)

const defaultBaseURL = "https://xkcd.com"

// Module получает последний или указанный по номеру комикс.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "xkcd" }
func (m *Module) Usage() string { return "xkcd [num]" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	target := m.BaseURL + "/info.0.json"
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil || num <= 0 {
			return nil, core.NewUsageError(m)
		}
		target = fmt.Sprintf("%s/%d/info.0.json", m.BaseURL, num)
	}
	rec, err := m.Client.FetchRecord(ctx, target)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("#%s - %s", rec.NumStr("num"), rec.Str("title")),
		rec.Str("alt"),
	}, nil
}
