// Package config loads the client's configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	HTTP    HTTPConfig
	Probe   ProbeConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// BackendConfig points the Data Client at the hosted backend.
type BackendConfig struct {
	URL       string // base URL of the hosted backend
	AppID     string // application id sent with every request
	TokenPath string // sqlite file holding the session token
}

// AdminPanelURL is where the backend's admin panel lives. The panel itself
// is backend territory; the client only links to it.
func (c BackendConfig) AdminPanelURL() string {
	return strings.TrimRight(c.URL, "/") + "/admin"
}

// HTTPConfig is the local UI server's listen address.
type HTTPConfig struct {
	Host string
	Port int
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ProbeConfig bounds the startup connectivity check.
type ProbeConfig struct {
	MaxAttempts int
	DelayMillis int
}

// Load reads configuration from env vars (and optionally a .env file in the
// working directory). Env vars win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "foodiefind")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_URL", "http://localhost:1111")
	v.SetDefault("BACKEND_APP_ID", "")
	v.SetDefault("TOKEN_DB_PATH", "foodiefind_session.db")
	v.SetDefault("HTTP_HOST", "127.0.0.1")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("PROBE_MAX_ATTEMPTS", 3)
	v.SetDefault("PROBE_DELAY_MS", 500)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Backend: BackendConfig{
			URL:       v.GetString("BACKEND_URL"),
			AppID:     v.GetString("BACKEND_APP_ID"),
			TokenPath: v.GetString("TOKEN_DB_PATH"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Probe: ProbeConfig{
			MaxAttempts: v.GetInt("PROBE_MAX_ATTEMPTS"),
			DelayMillis: v.GetInt("PROBE_DELAY_MS"),
		},
	}

	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("BACKEND_URL must not be empty")
	}
	return cfg, nil
}
