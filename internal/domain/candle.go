// Package domain defines core data structures shared by the analyzer pipeline.
package domain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Candle is a single OHLCV bar. Instances are built through NewCandle so the
// engine can assume well-formed numeric invariants (high >= low, volume >= 0).
type Candle struct {
	// OpenTime is the bar's opening timestamp.
	OpenTime time.Time
	// Open is the opening price.
	Open decimal.Decimal
	// High is the highest price reached during the bar.
	High decimal.Decimal
	// Low is the lowest price reached during the bar.
	Low decimal.Decimal
	// Close is the closing price.
	Close decimal.Decimal
	// Volume is the total traded volume in base units.
	Volume decimal.Decimal
}

// NewCandle validates raw bar values coming from a market data provider and
// converts them into a Candle.
func NewCandle(openTime time.Time, open, high, low, close, volume decimal.Decimal) (Candle, error) {
	if high.LessThan(low) {
		return Candle{}, errors.Errorf("candle high %s is below low %s", high.String(), low.String())
	}
	if volume.IsNegative() {
		return Candle{}, errors.Errorf("candle volume %s is negative", volume.String())
	}

	return Candle{
		OpenTime: openTime,
		Open:     open,
		High:     high,
		Low:      low,
		Close:    close,
		Volume:   volume,
	}, nil
}
