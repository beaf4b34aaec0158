package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/optzone/internal/domain"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty symbol", mutate: func(c *Config) { c.Symbol = "" }},
		{name: "unknown platform", mutate: func(c *Config) { c.Platform = "kraken" }},
		{name: "bad bins", mutate: func(c *Config) { c.Profile.Bins = -1 }},
		{name: "bad fraction", mutate: func(c *Config) { c.Profile.ValueAreaFraction = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
		})
	}
}

func TestGetYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
symbol: BTCUSDT
platform: binance
period: 2w
interval: 15m
bins: 200
value_area_fraction: 0.68
`), 0o644))

	cfg, err := getYaml(path)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", cfg.Symbol)
	assert.Equal(t, "binance", cfg.Platform)
	assert.Equal(t, "2w", cfg.Period)
	assert.Equal(t, "15m", cfg.Interval)
	assert.Equal(t, 200, cfg.Profile.Bins)
	assert.InDelta(t, 0.68, cfg.Profile.ValueAreaFraction, 1e-12)

	// unspecified values keep defaults
	assert.InDelta(t, 1.5, cfg.Profile.HVNMultiplier, 1e-12)
	assert.Equal(t, 3, cfg.Profile.HVNTopK)
}

func TestGetYamlInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bins: -10\n"), 0o644))

	_, err := getYaml(path)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestGetYamlMissingFile(t *testing.T) {
	_, err := getYaml(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Symbol = "ETHUSDT"
	cfg.Platform = "bybit"
	require.NoError(t, cfg.Save(path))

	loaded, err := getYaml(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Symbol, loaded.Symbol)
	assert.Equal(t, cfg.Platform, loaded.Platform)
	assert.Equal(t, cfg.Profile, loaded.Profile)
}
