package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type APIConfig struct {
	Port        string `envconfig:"PORT" default:"8080"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// CORS
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`

	// Telegram. Token and chat id are deliberately not marked required: a
	// misconfigured deployment must keep answering requests with a
	// structured 500 instead of crash-looping.
	TelegramBotToken string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string        `envconfig:"TELEGRAM_CHAT_ID"`
	TelegramBaseURL  string        `envconfig:"TELEGRAM_BASE_URL" default:"https://api.telegram.org"`
	TelegramTimeout  time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"8s"`
	TelegramRPS      float64       `envconfig:"TELEGRAM_RPS" default:"5"`
	TelegramBurst    int           `envconfig:"TELEGRAM_BURST" default:"10"`
}

type FormConfig struct {
	APIBaseURL   string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	ContactPhone string `envconfig:"CONTACT_PHONE" default:"+375 29 506 06 05"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadAPI() APIConfig {
	var cfg APIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func LoadForm() FormConfig {
	var cfg FormConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}
