package collector

import (
	"context"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
)

// YahooProvider implements CandleProvider on top of Yahoo Finance chart data.
// It covers futures symbols like CL=F that exchange APIs do not serve.
type YahooProvider struct{}

// NewYahooProvider creates a Yahoo Finance candle provider.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{}
}

// GetCandles fetches the candle window from the Yahoo chart API.
func (p *YahooProvider) GetCandles(_ context.Context, symbol, interval string, lookback time.Duration) ([]domain.Candle, error) {
	yahooInterval, err := convertIntervalToYahoo(interval)
	if err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.Add(-lookback)

	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: yahooInterval,
	})

	var candles []domain.Candle
	for iter.Next() {
		b := iter.Bar()

		candle, err := domain.NewCandle(
			time.Unix(int64(b.Timestamp), 0),
			b.Open, b.High, b.Low, b.Close,
			decimal.NewFromInt(int64(b.Volume)),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bar from Yahoo for %s", symbol)
		}

		candles = append(candles, candle)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch chart data from Yahoo for %s", symbol)
	}
	if len(candles) == 0 {
		return nil, errors.Errorf("no chart data returned from Yahoo for %s", symbol)
	}

	return candles, nil
}

// GetPrice fetches the latest (delayed) market price.
func (p *YahooProvider) GetPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch quote from Yahoo for %s", symbol)
	}
	if q == nil {
		return decimal.Decimal{}, errors.Errorf("empty quote from Yahoo for %s", symbol)
	}

	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}

// convertIntervalToYahoo maps the standard interval format to Yahoo's.
func convertIntervalToYahoo(interval string) (datetime.Interval, error) {
	switch interval {
	case "1m":
		return datetime.OneMin, nil
	case "5m":
		return datetime.FiveMins, nil
	case "15m":
		return datetime.FifteenMins, nil
	case "30m":
		return datetime.ThirtyMins, nil
	case "1h":
		return datetime.OneHour, nil
	case "1d":
		return datetime.OneDay, nil
	default:
		return "", errors.Errorf("interval %q is not supported by the Yahoo provider", interval)
	}
}
