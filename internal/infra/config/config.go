package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию сервиса.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	TZ     string `envconfig:"TZ" default:"America/New_York"`
	Port   int    `envconfig:"PORT" default:"5000"`

	SecretToken string `envconfig:"SECRET_TOKEN"`

	Slack struct {
		Token   string        `envconfig:"SLACK_TOKEN"`
		BaseURL string        `envconfig:"SLACK_BASE_URL"`
		Timeout time.Duration `envconfig:"SLACK_TIMEOUT" default:"15s"`
	} `envconfig:""`

	Hours struct {
		Open  int `envconfig:"OPEN_HOUR" default:"8"`
		Close int `envconfig:"CLOSE_HOUR" default:"17"`
	} `envconfig:""`

	Match struct {
		CaseInsensitive bool `envconfig:"MATCH_CASE_INSENSITIVE" default:"false"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}
