// Package collector fetches historical OHLCV candles from market data
// providers and converts them into validated domain candles.
package collector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
)

// CandleProvider supplies the candle window and the spot price for a symbol.
type CandleProvider interface {
	// GetCandles fetches the chronological candle window covering lookback
	// at the given bar interval ("1m", "5m", "1h", "1d").
	GetCandles(ctx context.Context, symbol, interval string, lookback time.Duration) ([]domain.Candle, error)
	// GetPrice fetches the latest traded price.
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// ParseInterval converts a bar size string into a duration.
func ParseInterval(interval string) (time.Duration, error) {
	if len(interval) < 2 {
		return 0, fmt.Errorf("invalid interval format: %q", interval)
	}

	n, err := strconv.Atoi(interval[:len(interval)-1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid interval format: %q", interval)
	}

	switch interval[len(interval)-1] {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported interval unit in %q", interval)
	}
}

// ParsePeriod converts a lookback period string ("5d", "2w", "1mo", "36h")
// into a duration.
func ParsePeriod(period string) (time.Duration, error) {
	var unit time.Duration
	var digits string

	switch {
	case strings.HasSuffix(period, "mo"):
		unit, digits = 30*24*time.Hour, strings.TrimSuffix(period, "mo")
	case strings.HasSuffix(period, "w"):
		unit, digits = 7*24*time.Hour, strings.TrimSuffix(period, "w")
	case strings.HasSuffix(period, "d"):
		unit, digits = 24*time.Hour, strings.TrimSuffix(period, "d")
	case strings.HasSuffix(period, "h"):
		unit, digits = time.Hour, strings.TrimSuffix(period, "h")
	default:
		return 0, fmt.Errorf("unsupported period format: %q", period)
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid period format: %q", period)
	}

	return time.Duration(n) * unit, nil
}

// candleLimit computes how many bars of the given interval cover the
// lookback, capped to what a single provider request can return.
func candleLimit(lookback, interval time.Duration, maxPerRequest int) int {
	limit := int(lookback / interval)
	if limit < 1 {
		limit = 1
	}
	if limit > maxPerRequest {
		limit = maxPerRequest
	}

	return limit
}
