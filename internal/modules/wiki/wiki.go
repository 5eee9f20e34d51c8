package wiki

import (
	"context"
	"net/url"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
)

const defaultBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary"

// Module выполняет поиск краткой справки в энциклопедии.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "search" }
func (m *Module) Usage() string { return "search <term>" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, core.NewUsageError(m)
	}
	// Статьи энциклопедии адресуются с подчеркиваниями вместо пробелов.
	term := strings.Join(args, "_")
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL+"/"+url.PathEscape(term))
	if err != nil {
		return nil, err
	}
	lines := []string{
		rec.Str("title"),
		rec.Str("extract"),
	}
	if page := rec.Rec("content_urls").Rec("desktop").Str("page"); page != core.Placeholder {
		lines = append(lines, page)
	}
	return lines, nil
}
