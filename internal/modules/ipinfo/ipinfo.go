package ipinfo

import (
	"context"

	"upb/internal/netclient"
)

const defaultBaseURL = "https://api.ipify.org?format=json"

// Module показывает публичный адрес вызывающей стороны.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "ip" }
func (m *Module) Usage() string { return "ip" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL)
	if err != nil {
		return nil, err
	}
	return []string{"public IP: " + rec.Str("ip")}, nil
}
