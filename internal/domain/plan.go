package domain

import "github.com/shopspring/decimal"

// StrategyPlan is the read-only result of a full analysis run. Prices are
// rounded decimals ready for rendering; the plan is never mutated after
// construction.
type StrategyPlan struct {
	// Symbol is the analyzed instrument.
	Symbol string
	// Context labels the market state relative to the value area.
	Context MarketContext
	// Spot is the current price used for classification.
	Spot decimal.Decimal
	// POC, VAH and VAL are the structural levels of the profile.
	POC decimal.Decimal
	VAH decimal.Decimal
	VAL decimal.Decimal
	// HVNs are high volume node prices (support/resistance zones).
	HVNs []decimal.Decimal
	// LVNs are low volume node prices (fast-move/vacuum zones).
	LVNs []decimal.Decimal
	// Bias holds one line per key level describing its strategic role.
	Bias []string
	// Narrative is the context-dependent trading plan text.
	Narrative string
	// StrategyFamily names the suggested option structure family.
	StrategyFamily string
}

// LevelStrength scores a price level's support/resistance quality.
type LevelStrength struct {
	// Price is the level's representative price.
	Price float64
	// Score is the raw strength (volume adjusted by touches and distance).
	Score float64
	// Normalized is the score scaled to 0-100 across the profile.
	Normalized float64
	// Touches is the number of candle lows that tested the level.
	Touches int
	// Rank is 1 for the strongest level.
	Rank int
}
