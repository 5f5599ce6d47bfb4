package config

import (
	"os"
	"strings"
)

type Config struct {
	App AppConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// Load reads configuration from the environment. The listen port is the only
// value that changes behavior; the rest is display metadata.
func Load() (Config, error) {
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	return Config{
		App: AppConfig{
			AppName:     opt("APP_NAME", "job-search-api"),
			Environment: opt("APP_ENV", "development"),
			HTTPPort:    opt("PORT", "4000"),
		},
	}, nil
}
