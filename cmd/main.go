// Command optzone computes a volume profile over a window of historical
// candles, derives key price levels (POC, VAH, VAL, HVN/LVN), classifies the
// current price against them and prints a trading-zone report.
//
// Usage:
//
//	optzone --symbol CL=F --period 5d --interval 5m
//	optzone --config config.yaml
//	optzone --setup
//
// Market data comes from Yahoo Finance by default; Binance and Bybit are
// supported for crypto symbols and need no API keys for public kline data.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/quantfold/optzone/config"
	"github.com/quantfold/optzone/internal/domain"
	"github.com/quantfold/optzone/internal/services/market/analysis"
	"github.com/quantfold/optzone/internal/services/market/collector"
	"github.com/quantfold/optzone/internal/services/market/profile"
	"github.com/quantfold/optzone/internal/services/report"
	"github.com/quantfold/optzone/internal/services/strategy"
	"github.com/quantfold/optzone/internal/setup"
	"github.com/quantfold/optzone/pkg/indicators"
	"github.com/quantfold/optzone/pkg/retrier"
)

const fetchTimeout = 30 * time.Second

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Setup {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	provider, err := newProvider(cfg.Platform)
	if err != nil {
		return err
	}

	lookback, err := collector.ParsePeriod(cfg.Period)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	logger.Info("fetching candles",
		zap.String("symbol", cfg.Symbol),
		zap.String("platform", cfg.Platform),
		zap.String("period", cfg.Period),
		zap.String("interval", cfg.Interval))

	r := retrier.New()
	candles, err := retrier.DoWithData(r, ctx, func(ctx context.Context) ([]domain.Candle, error) {
		return provider.GetCandles(ctx, cfg.Symbol, cfg.Interval, lookback)
	})
	if err != nil {
		return err
	}

	spot, err := retrier.DoWithData(r, ctx, func(ctx context.Context) (decimal.Decimal, error) {
		return provider.GetPrice(ctx, cfg.Symbol)
	})
	if err != nil {
		return err
	}

	logger.Info("candles loaded", zap.Int("count", len(candles)), zap.String("spot", spot.String()))

	analyzer, err := profile.NewAnalyzer(cfg.Profile, logger)
	if err != nil {
		return err
	}

	prof, err := analyzer.Build(candles)
	if err != nil {
		return err
	}

	levels, err := analyzer.ExtractLevels(prof)
	if err != nil {
		return err
	}

	nodes, err := analyzer.FindNodes(prof)
	if err != nil {
		return err
	}

	spotF := spot.InexactFloat64()
	mctx := analysis.Classify(spotF, levels.VAH, levels.VAL)
	strength := analysis.NewStrengthAnalyzer(logger).Rank(candles, prof, spotF)
	plan := strategy.NewAdvisor().Advise(cfg.Symbol, mctx, levels, nodes, spotF)

	var trend *indicators.TrendContext
	if tc, err := indicators.ComputeTrendContext(candles); err != nil {
		logger.Warn("trend context unavailable", zap.Error(err))
	} else {
		trend = &tc
	}

	fmt.Println(report.NewRenderer().Render(plan, strength, trend))

	return nil
}

func newProvider(platform string) (collector.CandleProvider, error) {
	switch platform {
	case "yahoo":
		return collector.NewYahooProvider(), nil
	case "binance":
		return collector.NewBinanceProvider(binance.NewClient("", "")), nil
	case "bybit":
		return collector.NewBybitProvider(bybit.NewClient()), nil
	default:
		return nil, fmt.Errorf("unsupported platform %q", platform)
	}
}
