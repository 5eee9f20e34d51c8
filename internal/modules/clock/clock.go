package clock

import (
	"context"

	"upb/internal/netclient"
)

const (
	defaultBaseURL = "https://worldtimeapi.org/api/timezone"
	defaultZone    = "Etc/UTC"
)

// Module показывает локальное время для указанной тайм-зоны.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "time" }
func (m *Module) Usage() string { return "time [zone]" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	zone := defaultZone
	if len(args) > 0 {
		zone = args[0]
	}
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL+"/"+zone)
	if err != nil {
		return nil, err
	}
	return []string{
		rec.Str("timezone") + " (" + rec.Str("abbreviation") + ")",
		rec.Str("datetime"),
	}, nil
}
