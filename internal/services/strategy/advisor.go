// Package strategy maps market structure to a textual trading plan. It is a
// pure template lookup: no price prediction, no side effects, no randomness.
package strategy

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
)

// Advisor produces a StrategyPlan from classified market structure.
type Advisor struct{}

// NewAdvisor creates an Advisor.
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Advise builds the plan narrative for the given context and levels.
func (a *Advisor) Advise(symbol string, mctx domain.MarketContext, levels domain.KeyLevels, nodes domain.NodeList, spot float64) domain.StrategyPlan {
	plan := domain.StrategyPlan{
		Symbol:  symbol,
		Context: mctx,
		Spot:    round2(spot),
		POC:     round2(levels.POC),
		VAH:     round2(levels.VAH),
		VAL:     round2(levels.VAL),
	}

	for _, p := range nodes.HVN {
		plan.HVNs = append(plan.HVNs, round2(p))
	}
	for _, p := range nodes.LVN {
		plan.LVNs = append(plan.LVNs, round2(p))
	}

	switch mctx {
	case domain.ContextInsideValue:
		plan.Narrative = fmt.Sprintf(
			"Price %s is trading inside value [%s, %s]: balanced, range-bound conditions. "+
				"Expect rotation around the POC at %s; fade moves toward the value area edges.",
			plan.Spot, plan.VAL, plan.VAH, plan.POC)
		plan.StrategyFamily = "defined-risk premium selling (iron condor / credit spreads anchored to VAH and VAL)"
		plan.Bias = []string{
			fmt.Sprintf("POC %s: mean-reversion magnet, rotation target", plan.POC),
			fmt.Sprintf("VAH %s: resistance, favor short-bias entries on rejection", plan.VAH),
			fmt.Sprintf("VAL %s: support, favor long-bias entries on reclaim", plan.VAL),
		}
	case domain.ContextAboveValue:
		plan.Narrative = fmt.Sprintf(
			"Price %s is above value (VAH %s): imbalanced, trending up. "+
				"Treat VAH as first support on pullbacks; acceptance above keeps the breakout in play, "+
				"a close back inside value targets the POC at %s.",
			plan.Spot, plan.VAH, plan.POC)
		plan.StrategyFamily = "directional debit spreads or outright long calls in the breakout direction"
		plan.Bias = []string{
			fmt.Sprintf("VAH %s: breakout level, now first support", plan.VAH),
			fmt.Sprintf("POC %s: downside rotation target on failure", plan.POC),
			fmt.Sprintf("VAL %s: invalidation zone for the upside imbalance", plan.VAL),
		}
	case domain.ContextBelowValue:
		plan.Narrative = fmt.Sprintf(
			"Price %s is below value (VAL %s): imbalanced, trending down. "+
				"Treat VAL as first resistance on bounces; acceptance below keeps the breakdown in play, "+
				"a close back inside value targets the POC at %s.",
			plan.Spot, plan.VAL, plan.POC)
		plan.StrategyFamily = "directional debit spreads or outright long puts in the breakdown direction"
		plan.Bias = []string{
			fmt.Sprintf("VAL %s: breakdown level, now first resistance", plan.VAL),
			fmt.Sprintf("POC %s: upside rotation target on failure", plan.POC),
			fmt.Sprintf("VAH %s: invalidation zone for the downside imbalance", plan.VAH),
		}
	}

	// node zones are listed regardless of context
	if len(plan.HVNs) > 0 {
		plan.Bias = append(plan.Bias,
			fmt.Sprintf("HVN %s: structural support/resistance zones", joinPrices(plan.HVNs)))
	}
	if len(plan.LVNs) > 0 {
		plan.Bias = append(plan.Bias,
			fmt.Sprintf("LVN %s: liquidity voids, expect fast moves through", joinPrices(plan.LVNs)))
	}

	return plan
}

func joinPrices(prices []decimal.Decimal) string {
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = p.String()
	}

	return strings.Join(parts, ", ")
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
