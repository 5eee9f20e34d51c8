// Package quips объединяет однострочные развлекательные API:
// цитаты, шутки, советы и факты о котах. Обработчики различаются
// только адресом и правилом извлечения полей.
package quips

import (
	"context"

	"upb/internal/netclient"
)

// extractFunc превращает ответ API в строки для вывода.
type extractFunc func(rec netclient.Record) []string

// Module реализует один quip-обработчик.
type Module struct {
	Client  *netclient.Client
	BaseURL string

	verb       string
	defaultURL string
	extract    extractFunc
}

func (m *Module) Name() string  { return m.verb }
func (m *Module) Usage() string { return m.verb }

func (m *Module) Init(ctx context.Context) error {
	if m.BaseURL == "" {
		m.BaseURL = m.defaultURL
	}
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	rec, err := m.Client.FetchRecord(ctx, m.BaseURL)
	if err != nil {
		return nil, err
	}
	return m.extract(rec), nil
}

// NewQuote возвращает обработчик случайной цитаты.
func NewQuote(client *netclient.Client) *Module {
	return &Module{
		Client:     client,
		verb:       "quote",
		defaultURL: "https://api.quotable.io/random",
		extract: func(rec netclient.Record) []string {
			return []string{
				`"` + rec.Str("content") + `"`,
				"- " + rec.Str("author"),
			}
		},
	}
}

// NewJoke возвращает обработчик случайной шутки.
func NewJoke(client *netclient.Client) *Module {
	return &Module{
		Client:     client,
		verb:       "joke",
		defaultURL: "https://official-joke-api.appspot.com/random_joke",
		extract: func(rec netclient.Record) []string {
			return []string{rec.Str("setup"), rec.Str("punchline")}
		},
	}
}

// NewAdvice возвращает обработчик случайного совета.
func NewAdvice(client *netclient.Client) *Module {
	return &Module{
		Client:     client,
		verb:       "advice",
		defaultURL: "https://api.adviceslip.com/advice",
		extract: func(rec netclient.Record) []string {
			return []string{rec.Rec("slip").Str("advice")}
		},
	}
}

// NewCat возвращает обработчик случайного факта о котах.
func NewCat(client *netclient.Client) *Module {
	return &Module{
		Client:     client,
		verb:       "cat",
		defaultURL: "https://catfact.ninja/fact",
		extract: func(rec netclient.Record) []string {
			return []string{rec.Str("fact")}
		},
	}
}
