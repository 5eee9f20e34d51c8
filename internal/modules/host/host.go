package host

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Module показывает базовые метрики локального узла. Единственный
// обработчик без сетевого вызова: полезен для диагностики рантайма.
type Module struct{}

func (m *Module) Name() string  { return "sys" }
func (m *Module) Usage() string { return "sys" }

func (m *Module) Init(ctx context.Context) error { //nolint:revive // инициализация пока тривиальна
	return nil
}

func (m *Module) Execute(ctx context.Context, args []string) ([]string, error) {
	hInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory info: %w", err)
	}
	ld, err := load.AvgWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load info: %w", err)
	}
	uptime := time.Duration(hInfo.Uptime) * time.Second
	return []string{
		"Host " + hInfo.Hostname,
		fmt.Sprintf("platform: %s %s (kernel %s)", hInfo.Platform, hInfo.PlatformVersion, hInfo.KernelVersion),
		fmt.Sprintf("uptime: %s", uptime),
		fmt.Sprintf("memory: %d/%d MiB (%.1f%%)", vm.Used>>20, vm.Total>>20, vm.UsedPercent),
		fmt.Sprintf("load: %.2f %.2f %.2f", ld.Load1, ld.Load5, ld.Load15),
	}, nil
}
