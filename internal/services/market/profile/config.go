// Package profile builds volume-by-price histograms from candle windows and
// extracts structural levels (POC, value area, volume nodes) from them.
package profile

import (
	"github.com/pkg/errors"

	"github.com/quantfold/optzone/internal/domain"
)

// Config controls histogram resolution and level extraction thresholds.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Bins is the number of equal-width price bins.
	Bins int
	// ValueAreaFraction is the share of total volume the value area must cover.
	ValueAreaFraction float64
	// HVNMultiplier scales mean bin volume into the high volume node floor.
	HVNMultiplier float64
	// LVNMultiplier scales mean bin volume into the low volume node ceiling.
	LVNMultiplier float64
	// HVNTopK caps the number of reported high volume nodes.
	HVNTopK int
	// LVNTopK caps the number of reported low volume nodes.
	LVNTopK int
}

// DefaultConfig returns the standard profile settings.
func DefaultConfig() Config {
	return Config{
		Bins:              150,
		ValueAreaFraction: 0.70,
		HVNMultiplier:     1.5,
		LVNMultiplier:     0.5,
		HVNTopK:           3,
		LVNTopK:           2,
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Bins <= 0 {
		return errors.Wrapf(domain.ErrInvalidConfig, "bins must be positive, got %d", c.Bins)
	}
	if c.ValueAreaFraction <= 0 || c.ValueAreaFraction > 1 {
		return errors.Wrapf(domain.ErrInvalidConfig, "value area fraction must be in (0, 1], got %v", c.ValueAreaFraction)
	}
	if c.HVNMultiplier <= 0 || c.LVNMultiplier <= 0 {
		return errors.Wrapf(domain.ErrInvalidConfig, "node multipliers must be positive, got hvn=%v lvn=%v", c.HVNMultiplier, c.LVNMultiplier)
	}
	if c.LVNMultiplier >= c.HVNMultiplier {
		return errors.Wrapf(domain.ErrInvalidConfig, "lvn multiplier %v must be below hvn multiplier %v", c.LVNMultiplier, c.HVNMultiplier)
	}
	if c.HVNTopK <= 0 || c.LVNTopK <= 0 {
		return errors.Wrapf(domain.ErrInvalidConfig, "node top-k must be positive, got hvn=%d lvn=%d", c.HVNTopK, c.LVNTopK)
	}

	return nil
}
