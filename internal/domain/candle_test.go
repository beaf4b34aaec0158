package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandle(t *testing.T) {
	d := decimal.NewFromFloat

	c, err := NewCandle(time.Unix(1700000000, 0), d(100), d(105), d(99), d(104), d(1250))
	require.NoError(t, err)
	assert.True(t, c.High.Equal(d(105)))
	assert.True(t, c.Volume.Equal(d(1250)))
}

func TestNewCandleRejectsInvertedRange(t *testing.T) {
	d := decimal.NewFromFloat

	_, err := NewCandle(time.Time{}, d(100), d(99), d(105), d(100), d(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below low")
}

func TestNewCandleRejectsNegativeVolume(t *testing.T) {
	d := decimal.NewFromFloat

	_, err := NewCandle(time.Time{}, d(100), d(105), d(99), d(100), d(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestMarketContextString(t *testing.T) {
	assert.Equal(t, "INSIDE VALUE", ContextInsideValue.String())
	assert.Equal(t, "ABOVE VALUE", ContextAboveValue.String())
	assert.Equal(t, "BELOW VALUE", ContextBelowValue.String())
}

func TestPriceBinMid(t *testing.T) {
	b := PriceBin{Low: 10, High: 12, Volume: 5}
	assert.InDelta(t, 11, b.Mid(), 1e-12)
}
