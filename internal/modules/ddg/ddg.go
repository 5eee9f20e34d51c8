package ddg

import (
	"context"
	"net/url"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
)

const defaultBaseURL = "https://api.duckduckgo.com/"

// Module запрашивает мгновенный ответ у поискового API.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "ddg" }
func (m *Module) Usage() string { return "ddg <query>" }

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
	query := strings.Join(args, " ")
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	heading := rec.Str("Heading")
	abstract := rec.Str("AbstractText")
	if abstract == core.Placeholder {
		// Прямого ответа нет: берем первый связанный топик, как в оригинале.
		if topics := rec.List("RelatedTopics"); len(topics) > 0 {
			if first, ok := topics[0].(map[string]interface{}); ok {
				abstract = netclient.Record(first).Str("Text")
			}
		}
	}
	lines := []string{heading, abstract}
	if src := rec.Str("AbstractSource"); src != core.Placeholder {
		lines = append(lines, "source: "+src)
	}
	return lines, nil
}
