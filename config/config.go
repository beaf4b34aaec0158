// Package config loads analyzer settings from command-line flags or a YAML
// file and validates them before the engine runs.
package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/quantfold/optzone/internal/domain"
	"github.com/quantfold/optzone/internal/services/market/profile"
)

// Config is the full, explicit configuration for one analysis run. It is
// passed into the engine as a value; nothing reads ambient state.
type Config struct {
	// Symbol is the instrument to analyze.
	Symbol string
	// Platform selects the candle source: yahoo, binance or bybit.
	Platform string
	// Period is the lookback window, e.g. "5d" or "1mo".
	Period string
	// Interval is the bar size, e.g. "5m".
	Interval string
	// Profile holds histogram and level extraction settings.
	Profile profile.Config
	// Setup requests the interactive configuration wizard.
	Setup bool
}

type configYaml struct {
	Symbol            string  `yaml:"symbol"`
	Platform          string  `yaml:"platform,omitempty"`
	Period            string  `yaml:"period,omitempty"`
	Interval          string  `yaml:"interval,omitempty"`
	Bins              int     `yaml:"bins,omitempty"`
	ValueAreaFraction float64 `yaml:"value_area_fraction,omitempty"`
	HVNMultiplier     float64 `yaml:"hvn_multiplier,omitempty"`
	LVNMultiplier     float64 `yaml:"lvn_multiplier,omitempty"`
	HVNTopK           int     `yaml:"hvn_top_k,omitempty"`
	LVNTopK           int     `yaml:"lvn_top_k,omitempty"`
}

// Default returns the stock configuration: CL futures over five days of
// five-minute bars from Yahoo.
func Default() Config {
	return Config{
		Symbol:   "CL=F",
		Platform: "yahoo",
		Period:   "5d",
		Interval: "5m",
		Profile:  profile.DefaultConfig(),
	}
}

// Get builds the configuration from CLI flags, or from a YAML file when
// --config is given. Flag defaults match Default().
func Get() (Config, error) {
	def := Default()

	configPath := flag.String("config", "", "path to yaml config")
	setup := flag.Bool("setup", false, "run the interactive configuration wizard")
	symbol := flag.String("symbol", def.Symbol, "ticker symbol, example: CL=F")
	platform := flag.String("platform", def.Platform, "candle source: yahoo, binance or bybit")
	period := flag.String("period", def.Period, "lookback period, example: 5d, 1mo")
	interval := flag.String("interval", def.Interval, "bar size, example: 5m, 1h")
	bins := flag.Int("bins", def.Profile.Bins, "number of price bins")
	flag.Parse()

	if *setup {
		def.Setup = true
		return def, nil
	}

	if *configPath != "" {
		return getYaml(*configPath)
	}

	cfg := def
	cfg.Symbol = *symbol
	cfg.Platform = *platform
	cfg.Period = *period
	cfg.Interval = *interval
	cfg.Profile.Bins = *bins

	return cfg, cfg.Validate()
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var raw configYaml
	if err := yaml.Unmarshal(f, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	cfg := Default()
	if raw.Symbol != "" {
		cfg.Symbol = raw.Symbol
	}
	if raw.Platform != "" {
		cfg.Platform = raw.Platform
	}
	if raw.Period != "" {
		cfg.Period = raw.Period
	}
	if raw.Interval != "" {
		cfg.Interval = raw.Interval
	}
	if raw.Bins != 0 {
		cfg.Profile.Bins = raw.Bins
	}
	if raw.ValueAreaFraction != 0 {
		cfg.Profile.ValueAreaFraction = raw.ValueAreaFraction
	}
	if raw.HVNMultiplier != 0 {
		cfg.Profile.HVNMultiplier = raw.HVNMultiplier
	}
	if raw.LVNMultiplier != 0 {
		cfg.Profile.LVNMultiplier = raw.LVNMultiplier
	}
	if raw.HVNTopK != 0 {
		cfg.Profile.HVNTopK = raw.HVNTopK
	}
	if raw.LVNTopK != 0 {
		cfg.Profile.LVNTopK = raw.LVNTopK
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration values, wrapping domain.ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Symbol == "" {
		return errors.Wrap(domain.ErrInvalidConfig, "symbol must not be empty")
	}

	switch c.Platform {
	case "yahoo", "binance", "bybit":
	default:
		return errors.Wrapf(domain.ErrInvalidConfig, "unsupported platform %q", c.Platform)
	}

	return c.Profile.Validate()
}

// Save writes the configuration as YAML, used by the setup wizard.
func (c Config) Save(path string) error {
	raw := configYaml{
		Symbol:            c.Symbol,
		Platform:          c.Platform,
		Period:            c.Period,
		Interval:          c.Interval,
		Bins:              c.Profile.Bins,
		ValueAreaFraction: c.Profile.ValueAreaFraction,
		HVNMultiplier:     c.Profile.HVNMultiplier,
		LVNMultiplier:     c.Profile.LVNMultiplier,
		HVNTopK:           c.Profile.HVNTopK,
		LVNTopK:           c.Profile.LVNTopK,
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	return os.WriteFile(path, data, 0o644)
}
