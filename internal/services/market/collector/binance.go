package collector

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
)

const binanceMaxKlines = 1000

// BinanceProvider implements CandleProvider for Binance spot markets.
type BinanceProvider struct {
	client *binance.Client
}

// NewBinanceProvider creates a Binance candle provider.
func NewBinanceProvider(client *binance.Client) *BinanceProvider {
	return &BinanceProvider{client: client}
}

// GetCandles fetches klines and converts them into validated candles.
func (p *BinanceProvider) GetCandles(ctx context.Context, symbol, interval string, lookback time.Duration) ([]domain.Candle, error) {
	barSize, err := ParseInterval(interval)
	if err != nil {
		return nil, err
	}

	klines, err := p.client.NewKlinesService().
		Symbol(symbol).
		Interval(interval).
		Limit(candleLimit(lookback, barSize, binanceMaxKlines)).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Binance for %s", symbol)
	}
	if len(klines) == 0 {
		return nil, errors.Errorf("no kline data returned from Binance for %s", symbol)
	}

	candles := make([]domain.Candle, len(klines))
	for i, k := range klines {
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

		candles[i], err = domain.NewCandle(
			time.Unix(0, k.OpenTime*int64(time.Millisecond)),
			open, high, low, close, volume,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid kline from Binance at index %d", i)
		}
	}

	return candles, nil
}

// GetPrice fetches the latest trade price.
func (p *BinanceProvider) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := p.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch price from Binance for %s", symbol)
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, errors.Errorf("Binance API returned empty prices for %s", symbol)
	}

	return decimal.NewFromString(prices[0].Price)
}
