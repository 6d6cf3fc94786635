package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Debug bool   `env:"DEBUG" envDefault:"false"`
	Addr  string `env:"ADDR" envDefault:":8080"`

	// MaxUsers caps the user-count field of a form; larger values are clamped.
	MaxUsers   int           `env:"MAX_USERS" envDefault:"50"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// Used by the terminal client.
	ServerURL   string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	HTTPRetries int    `env:"HTTP_RETRIES" envDefault:"3"`
	PlanFormat  string `env:"PLAN_FORMAT" envDefault:"text"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
