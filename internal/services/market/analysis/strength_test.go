package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quantfold/optzone/internal/domain"
)

func mkCandle(t *testing.T, low, high, volume float64) domain.Candle {
	t.Helper()

	c, err := domain.NewCandle(
		time.Time{},
		decimal.NewFromFloat(low),
		decimal.NewFromFloat(high),
		decimal.NewFromFloat(low),
		decimal.NewFromFloat(high),
		decimal.NewFromFloat(volume),
	)
	require.NoError(t, err)

	return c
}

func testProfile(bins []domain.PriceBin) *domain.VolumeProfile {
	p := &domain.VolumeProfile{Bins: bins}
	if len(bins) > 0 {
		p.BinWidth = bins[0].High - bins[0].Low
	}
	for _, b := range bins {
		p.TotalVolume += b.Volume
	}

	return p
}

func TestRankOrdersByStrength(t *testing.T) {
	s := NewStrengthAnalyzer(zap.NewNop())

	p := testProfile([]domain.PriceBin{
		{Low: 98, High: 99, Volume: 50},
		{Low: 99, High: 100, Volume: 900},
		{Low: 100, High: 101, Volume: 300},
		{Low: 101, High: 102, Volume: 10},
	})

	candles := []domain.Candle{
		mkCandle(t, 99.5, 101, 100), // low tests the 99.5 level
		mkCandle(t, 99.5, 100.5, 100),
	}

	levels := s.Rank(candles, p, 100)
	require.NotEmpty(t, levels)

	// the heavy, twice-tested bin near spot must rank first
	assert.InDelta(t, 99.5, levels[0].Price, 1e-9)
	assert.Equal(t, 1, levels[0].Rank)
	assert.Equal(t, 2, levels[0].Touches)
	assert.InDelta(t, 100, levels[0].Normalized, 1e-9)

	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t, levels[i-1].Normalized, levels[i].Normalized)
		assert.Equal(t, i+1, levels[i].Rank)
	}
}

func TestRankDistanceDecay(t *testing.T) {
	s := NewStrengthAnalyzer(zap.NewNop())

	// equal volume everywhere: proximity to spot must decide
	p := testProfile([]domain.PriceBin{
		{Low: 80, High: 81, Volume: 100},
		{Low: 90, High: 91, Volume: 100},
		{Low: 100, High: 101, Volume: 100},
	})

	levels := s.Rank(nil, p, 100.5)
	require.NotEmpty(t, levels)
	assert.InDelta(t, 100.5, levels[0].Price, 1e-9)
}

func TestRankDegenerateInputs(t *testing.T) {
	s := NewStrengthAnalyzer(zap.NewNop())

	assert.Nil(t, s.Rank(nil, testProfile(nil), 100))
	assert.Nil(t, s.Rank(nil, testProfile([]domain.PriceBin{{Low: 1, High: 2, Volume: 5}}), 0))

	// all scores identical: nothing to rank
	p := testProfile([]domain.PriceBin{
		{Low: 99, High: 100, Volume: 100},
	})
	assert.Nil(t, s.Rank(nil, p, 99.5))
}

func TestTopBelow(t *testing.T) {
	levels := []domain.LevelStrength{
		{Price: 105, Rank: 1},
		{Price: 98, Rank: 2},
		{Price: 101, Rank: 3},
		{Price: 95, Rank: 4},
		{Price: 90, Rank: 5},
	}

	got := TopBelow(levels, 100, 2)
	require.Len(t, got, 2)
	assert.InDelta(t, 98, got[0].Price, 1e-9)
	assert.InDelta(t, 95, got[1].Price, 1e-9)
}
