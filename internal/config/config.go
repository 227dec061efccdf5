package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the console's full configuration surface. Values come from
// console.yaml next to the binary, overridden by CONSOLE_* environment
// variables (e.g. CONSOLE_API_BASE_URL).
type Config struct {
	HTTPAddr string

	API struct {
		BaseURL   string
		Timeout   time.Duration
		RateLimit float64 // requests per second to the backend; 0 disables
		RateBurst int
	}

	Auth struct {
		Password        string
		SessionDuration time.Duration
		CheckInterval   time.Duration
		SessionFile     string
	}

	Session struct {
		Store string // "file" or "redis"
	}

	Redis struct {
		Addr string
	}

	Upload struct {
		APIKey string // third-party image host; consumed by the UI build
	}
}

// Load reads configuration with the defaults the original deployment
// used.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8090")
	v.SetDefault("api.base_url", "http://localhost:3000/api")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.rate_limit", 0.0)
	v.SetDefault("api.rate_burst", 1)
	v.SetDefault("auth.password", "oldenfyre123")
	v.SetDefault("auth.session_duration", "1h")
	v.SetDefault("auth.check_interval", "60s")
	v.SetDefault("auth.session_file", "console_session.json")
	v.SetDefault("session.store", "file")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("upload.api_key", "")

	v.SetConfigName("console")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("console")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		// No config file is fine; defaults plus env cover everything.
	}

	var cfg Config
	cfg.HTTPAddr = v.GetString("http.addr")
	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.Timeout = v.GetDuration("api.timeout")
	cfg.API.RateLimit = v.GetFloat64("api.rate_limit")
	cfg.API.RateBurst = v.GetInt("api.rate_burst")
	cfg.Auth.Password = v.GetString("auth.password")
	cfg.Auth.SessionDuration = v.GetDuration("auth.session_duration")
	cfg.Auth.CheckInterval = v.GetDuration("auth.check_interval")
	cfg.Auth.SessionFile = v.GetString("auth.session_file")
	cfg.Session.Store = v.GetString("session.store")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Upload.APIKey = v.GetString("upload.api_key")

	return cfg, nil
}
