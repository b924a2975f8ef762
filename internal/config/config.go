package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Port string `yaml:"port"`
	} `yaml:"http"`

	Platform struct {
		BaseURL  string `yaml:"baseUrl"`
		AppToken string `yaml:"appToken"`
		// Host is the public host this service is reached through; upstream
		// Set-Cookie domains are rewritten to it before re-emitting.
		Host string `yaml:"host"`
	} `yaml:"platform"`

	Payments struct {
		GatewayURL string `yaml:"gatewayUrl"`
		Token      string `yaml:"token"`
	} `yaml:"payments"`
}

func Load() (Config, error) {
	cfg := Config{}
	cfg.HTTP.Port = "8080"

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	// Environment overrides (expected in deploy).
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := os.Getenv("PLATFORM_BASE_URL"); v != "" {
		cfg.Platform.BaseURL = v
	}
	if v := os.Getenv("PLATFORM_APP_TOKEN"); v != "" {
		cfg.Platform.AppToken = v
	}
	if v := os.Getenv("PLATFORM_HOST"); v != "" {
		cfg.Platform.Host = v
	}
	if v := os.Getenv("PAYMENTS_GATEWAY_URL"); v != "" {
		cfg.Payments.GatewayURL = v
	}
	if v := os.Getenv("PAYMENTS_TOKEN"); v != "" {
		cfg.Payments.Token = v
	}

	if cfg.Platform.BaseURL == "" {
		return Config{}, errors.New("missing platform base url (set platform.baseUrl in config or PLATFORM_BASE_URL)")
	}
	if cfg.Platform.AppToken == "" {
		return Config{}, errors.New("missing platform app token (set platform.appToken in config or PLATFORM_APP_TOKEN)")
	}
	if cfg.Platform.Host == "" {
		return Config{}, errors.New("missing platform host (set platform.host in config or PLATFORM_HOST)")
	}
	if cfg.Payments.GatewayURL == "" {
		return Config{}, errors.New("missing payments gateway url (set payments.gatewayUrl in config or PAYMENTS_GATEWAY_URL)")
	}
	if cfg.Payments.Token == "" {
		return Config{}, errors.New("missing payments token (set payments.token in config or PAYMENTS_TOKEN)")
	}

	return cfg, nil
}
