package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"upb/internal/config"
	"upb/internal/core"
	"upb/internal/modules/clock"
	"upb/internal/modules/ddg"
	"upb/internal/modules/dict"
	"upb/internal/modules/history"
	"upb/internal/modules/hn"
	"upb/internal/modules/host"
	"upb/internal/modules/ipinfo"
	"upb/internal/modules/market"
	"upb/internal/modules/quips"
	"upb/internal/modules/weather"
	"upb/internal/modules/wiki"
	"upb/internal/modules/xkcd"
	"upb/internal/netclient"
	"upb/internal/storage"
	"upb/internal/storage/sqlite"
)

// App агрегирует зависимости клиента.
type App struct {
	Registry  *core.Registry
	Store     storage.Store
	Client    *netclient.Client
	Connector netclient.Connector
	Config    config.Config
	Log       *slog.Logger

	cfgPath string
}

// New строит приложение: сеть, журнал команд и реестр обработчиков.
func New(ctx context.Context, cfgPath string, cfg config.Config, lg *slog.Logger) (*App, error) {
	client := netclient.NewClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)
	connector := &netclient.DesktopConnector{SSID: cfg.Wifi.SSID, Log: lg}
	if err := connector.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect network: %w", err)
	}

	st, err := sqlite.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	r := core.NewRegistry()
	handlers := []core.Handler{
		&wiki.Module{Client: client},
		&ddg.Module{Client: client},
		&xkcd.Module{Client: client},
		&hn.Module{Client: client},
		quips.NewQuote(client),
		quips.NewJoke(client),
		quips.NewAdvice(client),
		quips.NewCat(client),
		&weather.Module{Client: client},
		&dict.Module{Client: client},
		market.New("price", client, cfg.APIKeys["market"]),
		market.New("stock", client, cfg.APIKeys["market"]),
		&clock.Module{Client: client},
		&ipinfo.Module{Client: client},
		&host.Module{},
		&history.Module{Store: st, DefaultLimit: cfg.History.Limit},
	}
	for _, h := range handlers {
		if err := r.Register(ctx, h); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("register %s: %w", h.Name(), err)
		}
	}

	return &App{
		Registry:  r,
		Store:     st,
		Client:    client,
		Connector: connector,
		Config:    cfg,
		Log:       lg,
		cfgPath:   cfgPath,
	}, nil
}

// Reload перечитывает конфигурацию и заново инициализирует сеть.
// Таймауты и ключи API применяются к новым запросам после рестарта;
// на лету обновляются только Wi-Fi параметры соединения.
func (a *App) Reload(ctx context.Context) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	a.Config = cfg
	a.Connector = &netclient.DesktopConnector{SSID: cfg.Wifi.SSID, Log: a.Log}
	if err := a.Connector.Connect(ctx); err != nil {
		return fmt.Errorf("connect network: %w", err)
	}
	return nil
}

// Close высвобождает ресурсы приложения.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
