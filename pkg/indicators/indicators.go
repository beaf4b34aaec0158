// Package indicators computes the technical indicators (EMA, RSI, ATR) used
// for the report's trend context line.
package indicators

import (
	"fmt"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
	"github.com/cinar/indicator/v2/trend"
	"github.com/cinar/indicator/v2/volatility"

	"github.com/quantfold/optzone/internal/domain"
)

// TrendContext bundles the latest indicator readings for a candle window.
type TrendContext struct {
	EMA20 float64
	EMA50 float64
	RSI14 float64
	ATR14 float64
}

// minCandlesForTrend is the warmup needed by the slowest indicator (EMA50).
const minCandlesForTrend = 50

// ComputeTrendContext returns the most recent EMA20/EMA50/RSI14/ATR14 values
// for the window.
func ComputeTrendContext(candles []domain.Candle) (TrendContext, error) {
	if len(candles) < minCandlesForTrend {
		return TrendContext{}, fmt.Errorf("not enough candles for trend context: need %d, got %d", minCandlesForTrend, len(candles))
	}

	closes := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close.InexactFloat64()
		highs[i] = c.High.InexactFloat64()
		lows[i] = c.Low.InexactFloat64()
	}

	ema20, err := lastOf(computeEMA(closes, 20))
	if err != nil {
		return TrendContext{}, fmt.Errorf("failed to calculate EMA20: %w", err)
	}
	ema50, err := lastOf(computeEMA(closes, 50))
	if err != nil {
		return TrendContext{}, fmt.Errorf("failed to calculate EMA50: %w", err)
	}

	rsi := momentum.NewRsiWithPeriod[float64](14)
	rsi14, err := lastOf(helper.ChanToSlice(rsi.Compute(helper.SliceToChan(closes))))
	if err != nil {
		return TrendContext{}, fmt.Errorf("failed to calculate RSI14: %w", err)
	}

	atr := volatility.NewAtrWithPeriod[float64](14)
	atr14, err := lastOf(helper.ChanToSlice(atr.Compute(
		helper.SliceToChan(highs),
		helper.SliceToChan(lows),
		helper.SliceToChan(closes),
	)))
	if err != nil {
		return TrendContext{}, fmt.Errorf("failed to calculate ATR14: %w", err)
	}

	return TrendContext{
		EMA20: ema20,
		EMA50: ema50,
		RSI14: rsi14,
		ATR14: atr14,
	}, nil
}

func computeEMA(closes []float64, period int) []float64 {
	ema := trend.NewEmaWithPeriod[float64](period)
	return helper.ChanToSlice(ema.Compute(helper.SliceToChan(closes)))
}

func lastOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("indicator produced no values")
	}

	return values[len(values)-1], nil
}
