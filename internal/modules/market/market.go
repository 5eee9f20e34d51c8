package market

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// Распространенные тикеры, которые API понимает только по полному id.
var symbolIDs = map[string]string{
	"btc":  "bitcoin",
	"eth":  "ethereum",
	"doge": "dogecoin",
	"sol":  "solana",
	"ada":  "cardano",
	"xrp":  "ripple",
	"ltc":  "litecoin",
	"dot":  "polkadot",
	"bnb":  "binancecoin",
	"trx":  "tron",
}

// Module запрашивает котировки для списка тикеров одним вызовом.
// Нераспознанные тикеры не валят команду: по каждому печатается
// предупреждение, остальные выводятся в порядке ввода.
type Module struct {
	Client  *netclient.Client
	BaseURL string
	APIKey  string

	verb string
}

// New создает обработчик котировок под указанным verb.
func New(verb string, client *netclient.Client, apiKey string) *Module {
	return &Module{Client: client, APIKey: apiKey, verb: verb}
}

func (m *Module) Name() string  { return m.verb }
func (m *Module) Usage() string { return m.verb + " <symbol> [symbol...]" }

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

	ids := make([]string, 0, len(args))
	for _, sym := range args {
		ids = append(ids, resolveID(sym))
	}
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	if m.APIKey != "" {
		q.Set("x_cg_demo_api_key", m.APIKey)
	}
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(args))
	resolved := 0
	for i, sym := range args {
		quoted := rec.Rec(ids[i])
		price, ok := quoted.Num("usd")
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: no quote (unrecognized symbol?)", strings.ToLower(sym)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %.2f USD", strings.ToLower(sym), price))
		resolved++
	}
	if resolved == 0 {
		return nil, fmt.Errorf("no quotes returned for %s", strings.Join(args, " "))
	}
	return lines, nil
}

func resolveID(sym string) string {
	s := strings.ToLower(sym)
	if id, ok := symbolIDs[s]; ok {
		return id
	}
	return s
}
