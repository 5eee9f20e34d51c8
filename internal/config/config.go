package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config описывает основные параметры клиента.
type Config struct {
	Agent struct {
		LogLevel string `yaml:"log_level"`
	} `yaml:"agent"`
	Wifi struct {
		SSID     string `yaml:"ssid"`
		Password string `yaml:"password"`
	} `yaml:"wifi"`
	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`
	History struct {
		Path  string `yaml:"path"`
		Limit int    `yaml:"limit"`
	} `yaml:"history"`
	// APIKeys хранит опциональные ключи по имени сервиса.
	APIKeys map[string]string `yaml:"api_keys"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Agent.LogLevel = "info"
	cfg.HTTP.TimeoutSeconds = 10
	cfg.History.Path = "upb-history.db"
	cfg.History.Limit = 20
	cfg.APIKeys = map[string]string{}
	return cfg
}

// Load читает конфиг из файла YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: клиент работает на дефолтах без ключей.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = "upb.yaml"
	}
	data, err := os.ReadFile(path) // #nosec G304 -- путь к конфигу задается доверенным оператором.
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("config file is empty")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.APIKeys == nil {
		cfg.APIKeys = map[string]string{}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv накладывает переменные окружения (в т.ч. из .env) поверх файла.
func applyEnv(cfg *Config) {
	if v := os.Getenv("UPB_WIFI_SSID"); v != "" {
		cfg.Wifi.SSID = v
	}
	if v := os.Getenv("UPB_WIFI_PASSWORD"); v != "" {
		cfg.Wifi.Password = v
	}
	if v := os.Getenv("UPB_MARKET_API_KEY"); v != "" {
		cfg.APIKeys["market"] = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Agent.LogLevel = v
	}
}
