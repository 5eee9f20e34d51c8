package netclient

import (
	"context"
	"log/slog"
)

// Connector отвечает за установку сетевой связности перед запросами.
type Connector interface {
	Connect(ctx context.Context) error
}

// DesktopConnector реализует no-op connect для десктопного рантайма:
// ОС уже управляет сетью, Wi-Fi ассоциация не требуется.
type DesktopConnector struct {
	SSID string
	Log  *slog.Logger
}

// Connect всегда успешен; настроенный SSID только логируется.
func (c *DesktopConnector) Connect(ctx context.Context) error {
	if c.Log == nil {
		return nil
	}
	if c.SSID == "" {
		c.Log.Info("network ready", "runtime", "desktop")
		return nil
	}
	c.Log.Info("network ready", "runtime", "desktop", "ssid", c.SSID)
	return nil
}
