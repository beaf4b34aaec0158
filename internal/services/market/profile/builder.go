package profile

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/quantfold/optzone/internal/domain"
)

// Analyzer computes volume profiles and derives structural levels from them.
type Analyzer struct {
	cfg    Config
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer after validating the configuration.
func NewAnalyzer(cfg Config, logger *zap.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{cfg: cfg, logger: logger}, nil
}

// Build bins the candle window's volume by price into cfg.Bins equal-width
// bins spanning [min(low), max(high)]. Each candle's volume is distributed
// uniformly across its own low-high span, so a bin receives the fraction of
// the candle's volume proportional to the overlap with the candle's range.
// This approximates volume-at-price from OHLCV data alone; it is an
// intentional simplification, tick data is out of scope.
func (a *Analyzer) Build(candles []domain.Candle) (*domain.VolumeProfile, error) {
	if len(candles) == 0 {
		return nil, domain.ErrInsufficientData
	}
	if len(candles) < 2 {
		a.logger.Warn("volume profile built from a single candle, value area will be coarse")
	}

	priceMin := candles[0].Low.InexactFloat64()
	priceMax := candles[0].High.InexactFloat64()
	for _, c := range candles[1:] {
		if l := c.Low.InexactFloat64(); l < priceMin {
			priceMin = l
		}
		if h := c.High.InexactFloat64(); h > priceMax {
			priceMax = h
		}
	}

	if priceMax == priceMin {
		return nil, errors.Wrapf(domain.ErrDegenerateRange, "window traded flat at %v", priceMin)
	}

	width := (priceMax - priceMin) / float64(a.cfg.Bins)

	bins := make([]domain.PriceBin, a.cfg.Bins)
	for i := range bins {
		bins[i].Low = priceMin + float64(i)*width
		bins[i].High = bins[i].Low + width
	}
	// close the top edge exactly despite float accumulation
	bins[len(bins)-1].High = priceMax

	total := 0.0
	for _, c := range candles {
		vol := c.Volume.InexactFloat64()
		total += vol
		if vol == 0 {
			continue
		}

		low := c.Low.InexactFloat64()
		high := c.High.InexactFloat64()

		if high == low {
			bins[a.binIndex(low, priceMin, width)].Volume += vol
			continue
		}

		span := high - low
		for i := a.binIndex(low, priceMin, width); i <= a.binIndex(high, priceMin, width); i++ {
			overlap := min(high, bins[i].High) - max(low, bins[i].Low)
			if overlap <= 0 {
				continue
			}
			bins[i].Volume += vol * overlap / span
		}
	}

	a.logger.Debug("volume profile built",
		zap.Int("candles", len(candles)),
		zap.Int("bins", a.cfg.Bins),
		zap.Float64("price_min", priceMin),
		zap.Float64("price_max", priceMax),
		zap.Float64("total_volume", total))

	return &domain.VolumeProfile{
		Bins:        bins,
		BinWidth:    width,
		TotalVolume: total,
	}, nil
}

// binIndex maps a price inside [priceMin, priceMax] to its bin, clamping the
// top edge into the last bin.
func (a *Analyzer) binIndex(price, priceMin, width float64) int {
	idx := int((price - priceMin) / width)
	if idx < 0 {
		idx = 0
	}
	if idx >= a.cfg.Bins {
		idx = a.cfg.Bins - 1
	}

	return idx
}
