package dict

import (
	"context"
	"net/url"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const maxMeanings = 3

// Module ищет определение слова в словарном API.
type Module struct {
	Client  *netclient.Client
	BaseURL string
}

func (m *Module) Name() string  { return "define" }
func (m *Module) Usage() string { return "define <word>" }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = defaultBaseURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	if len(args) != 1 {
		return nil, core.NewUsageError(m)
	}
	word := strings.ToLower(args[0])

	// Словарный API возвращает массив статей, а не объект.
	var entries []netclient.Record
	if err := m.Client.Fetch(ctx, m.BaseURL+"/"+url.PathEscape(word), &entries); err != nil {
		return nil, err
	}
	lines := []string{word}
	if len(entries) == 0 {
		return append(lines, core.Placeholder), nil
	}
	for _, meaning := range entries[0].List("meanings") {
		if len(lines)-1 >= maxMeanings {
			break
		}
		mRec, ok := meaning.(map[string]interface{})
		if !ok {
			continue
		}
		meaningRec := netclient.Record(mRec)
		pos := meaningRec.Str("partOfSpeech")
		defs := meaningRec.List("definitions")
		if len(defs) == 0 {
			lines = append(lines, pos+": "+core.Placeholder)
			continue
		}
		dRec, ok := defs[0].(map[string]interface{})
		if !ok {
			continue
		}
		lines = append(lines, pos+": "+netclient.Record(dRec).Str("definition"))
	}
	if len(lines) == 1 {
		lines = append(lines, core.Placeholder)
	}
	return lines, nil
}
