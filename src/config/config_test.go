package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BOARD_BASE_URL", "")
	t.Setenv("BOARD_FETCH_TIMEOUT", "")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("https://versatileapi.herokuapp.com/api", cfg.BaseURL)
	req.Equal(10*time.Second, cfg.FetchTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("BOARD_BASE_URL", "http://localhost:8080/api")
	t.Setenv("BOARD_FETCH_TIMEOUT", "2s")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("http://localhost:8080/api", cfg.BaseURL)
	req.Equal(2*time.Second, cfg.FetchTimeout)
}
