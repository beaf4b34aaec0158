package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		shouldErr bool
	}{
		{name: "1 minute", input: "1m", expected: time.Minute},
		{name: "5 minutes", input: "5m", expected: 5 * time.Minute},
		{name: "1 hour", input: "1h", expected: time.Hour},
		{name: "4 hours", input: "4h", expected: 4 * time.Hour},
		{name: "1 day", input: "1d", expected: 24 * time.Hour},
		{name: "1 week", input: "1w", expected: 7 * 24 * time.Hour},
		{name: "empty", input: "", shouldErr: true},
		{name: "no unit", input: "15", shouldErr: true},
		{name: "no number", input: "m", shouldErr: true},
		{name: "unsupported unit", input: "3x", shouldErr: true},
		{name: "negative", input: "-5m", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		shouldErr bool
	}{
		{name: "5 days", input: "5d", expected: 5 * 24 * time.Hour},
		{name: "2 weeks", input: "2w", expected: 14 * 24 * time.Hour},
		{name: "1 month", input: "1mo", expected: 30 * 24 * time.Hour},
		{name: "36 hours", input: "36h", expected: 36 * time.Hour},
		{name: "empty", input: "", shouldErr: true},
		{name: "bare number", input: "5", shouldErr: true},
		{name: "zero", input: "0d", shouldErr: true},
		{name: "garbage", input: "xd", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCandleLimit(t *testing.T) {
	assert.Equal(t, 1440, candleLimit(5*24*time.Hour, 5*time.Minute, 2000))
	assert.Equal(t, 1000, candleLimit(5*24*time.Hour, 5*time.Minute, 1000))
	assert.Equal(t, 1, candleLimit(time.Minute, time.Hour, 1000))
}

func TestConvertIntervalToBybit(t *testing.T) {
	tests := []struct {
		input     string
		expected  string
		shouldErr bool
	}{
		{input: "1m", expected: "1"},
		{input: "5m", expected: "5"},
		{input: "15m", expected: "15"},
		{input: "1h", expected: "60"},
		{input: "4h", expected: "240"},
		{input: "1d", expected: "D"},
		{input: "", shouldErr: true},
		{input: "2h", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convertIntervalToBybit(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertIntervalToYahoo(t *testing.T) {
	got, err := convertIntervalToYahoo("5m")
	require.NoError(t, err)
	assert.EqualValues(t, "5m", got)

	_, err = convertIntervalToYahoo("4h")
	assert.Error(t, err)
}

func TestParseMillis(t *testing.T) {
	got, err := parseMillis("1672531200000")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1672531200, 0).UTC(), got.UTC())

	_, err = parseMillis("")
	assert.Error(t, err)

	_, err = parseMillis("abc")
	assert.Error(t, err)
}
