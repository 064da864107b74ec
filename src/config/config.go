// config.go - Environment-backed configuration for the board client.
// The base URL points at the hosted third-party API instance and is normally
// left at its default; the timeout bounds the one startup fetch.

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL      string        `envconfig:"BOARD_BASE_URL" default:"https://versatileapi.herokuapp.com/api"`
	FetchTimeout time.Duration `envconfig:"BOARD_FETCH_TIMEOUT" default:"10s"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
