package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"upb/internal/app"
	"upb/internal/config"
	"upb/internal/transports/cli"
	"upb/pkg/logger"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("UPB_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	lg := logger.New(cfg.Agent.LogLevel)

	ctx := context.Background()
	a, err := app.New(ctx, cfgPath, cfg, lg)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}

	root := cli.New(a, buildVersion())
	execErr := root.ExecuteContext(ctx)
	if err := a.Close(); err != nil {
		lg.Warn("close app", "err", err)
	}
	if execErr != nil {
		lg.Error("command failed", "err", execErr)
		os.Exit(1)
	}
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
