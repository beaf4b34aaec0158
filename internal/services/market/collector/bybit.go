package collector

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
)

const bybitMaxKlines = 1000

// BybitProvider implements CandleProvider for Bybit spot markets.
type BybitProvider struct {
	client *bybit.Client
}

// NewBybitProvider creates a Bybit candle provider.
func NewBybitProvider(client *bybit.Client) *BybitProvider {
	return &BybitProvider{client: client}
}

// GetCandles fetches klines and converts them into validated candles.
// Bybit returns bars newest first; the result is re-sorted chronologically.
func (p *BybitProvider) GetCandles(ctx context.Context, symbol, interval string, lookback time.Duration) ([]domain.Candle, error) {
	barSize, err := ParseInterval(interval)
	if err != nil {
		return nil, err
	}

	bybitInterval, err := convertIntervalToBybit(interval)
	if err != nil {
		return nil, err
	}

	limit := candleLimit(lookback, barSize, bybitMaxKlines)
	result, err := p.client.V5().Market().GetKline(bybit.V5GetKlineParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   bybit.SymbolV5(symbol),
		Interval: bybit.Interval(bybitInterval),
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", symbol)
	}
	if result == nil || len(result.Result.List) == 0 {
		return nil, errors.Errorf("no kline data returned from Bybit for %s", symbol)
	}

	candles := make([]domain.Candle, len(result.Result.List))
	for i, k := range result.Result.List {
		openTime, err := parseMillis(k.StartTime)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse start time at index %d", i)
		}
		open, err := decimal.NewFromString(k.Open)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse open price at index %d", i)
		}
		high, err := decimal.NewFromString(k.High)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse high price at index %d", i)
		}
		low, err := decimal.NewFromString(k.Low)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse low price at index %d", i)
		}
		close, err := decimal.NewFromString(k.Close)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse close price at index %d", i)
		}
		volume, err := decimal.NewFromString(k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse volume at index %d", i)
		}

		candles[i], err = domain.NewCandle(openTime, open, high, low, close, volume)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid kline from Bybit at index %d", i)
		}
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].OpenTime.Before(candles[j].OpenTime) })

	return candles, nil
}

// GetPrice fetches the latest trade price.
func (p *BybitProvider) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	s := bybit.SymbolV5(symbol)
	result, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   &s,
	})
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch price from Bybit for %s", symbol)
	}
	if len(result.Result.Spot.List) == 0 {
		return decimal.Decimal{}, errors.Errorf("Bybit API returned empty prices for %s", symbol)
	}

	return decimal.NewFromString(result.Result.Spot.List[0].LastPrice)
}

// convertIntervalToBybit maps the standard interval format ("5m", "1h") to
// Bybit's ("5", "60", "D").
func convertIntervalToBybit(interval string) (string, error) {
	switch interval {
	case "1m":
		return "1", nil
	case "5m":
		return "5", nil
	case "15m":
		return "15", nil
	case "30m":
		return "30", nil
	case "1h":
		return "60", nil
	case "4h":
		return "240", nil
	case "1d":
		return "D", nil
	default:
		return "", fmt.Errorf("interval %q is not supported by the Bybit provider", interval)
	}
}

func parseMillis(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	ms, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}

	return time.Unix(0, ms*int64(time.Millisecond)), nil
}
