package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/optzone/internal/domain"
)

func TestAdviseInsideValue(t *testing.T) {
	a := NewAdvisor()

	levels := domain.KeyLevels{POC: 100.123, VAH: 105.456, VAL: 95.789}
	nodes := domain.NodeList{HVN: []float64{100.1, 97.4}, LVN: []float64{103.2}}

	plan := a.Advise("CL=F", domain.ContextInsideValue, levels, nodes, 101.0)

	assert.Equal(t, "CL=F", plan.Symbol)
	assert.Equal(t, domain.ContextInsideValue, plan.Context)
	assert.Equal(t, "100.12", plan.POC.String())
	assert.Equal(t, "105.46", plan.VAH.String())
	assert.Equal(t, "95.79", plan.VAL.String())

	assert.Contains(t, plan.Narrative, "inside value")
	assert.Contains(t, plan.StrategyFamily, "iron condor")

	require.Len(t, plan.Bias, 5)
	assert.Contains(t, plan.Bias[0], "mean-reversion magnet")
	assert.Contains(t, plan.Bias[1], "resistance")
	assert.Contains(t, plan.Bias[2], "support")
	assert.Contains(t, plan.Bias[3], "HVN")
	assert.Contains(t, plan.Bias[4], "LVN")
}

func TestAdviseAboveValue(t *testing.T) {
	a := NewAdvisor()

	levels := domain.KeyLevels{POC: 100, VAH: 105, VAL: 95}
	plan := a.Advise("BTCUSDT", domain.ContextAboveValue, levels, domain.NodeList{}, 110)

	assert.Contains(t, plan.Narrative, "above value")
	assert.Contains(t, plan.Narrative, "trending up")
	assert.Contains(t, plan.StrategyFamily, "long calls")

	// no nodes detected: only the three level lines
	assert.Len(t, plan.Bias, 3)
}

func TestAdviseBelowValue(t *testing.T) {
	a := NewAdvisor()

	levels := domain.KeyLevels{POC: 100, VAH: 105, VAL: 95}
	nodes := domain.NodeList{LVN: []float64{97.5, 92.25}}
	plan := a.Advise("BTCUSDT", domain.ContextBelowValue, levels, nodes, 90)

	assert.Contains(t, plan.Narrative, "below value")
	assert.Contains(t, plan.Narrative, "trending down")
	assert.Contains(t, plan.StrategyFamily, "long puts")

	require.Len(t, plan.LVNs, 2)
	assert.Equal(t, "97.5", plan.LVNs[0].String())

	last := plan.Bias[len(plan.Bias)-1]
	assert.Contains(t, last, "liquidity voids")
	assert.Contains(t, last, "97.5, 92.25")
}

func TestAdviseIsDeterministic(t *testing.T) {
	a := NewAdvisor()

	levels := domain.KeyLevels{POC: 100, VAH: 105, VAL: 95}
	nodes := domain.NodeList{HVN: []float64{101}, LVN: []float64{99}}

	p1 := a.Advise("CL=F", domain.ContextInsideValue, levels, nodes, 100)
	p2 := a.Advise("CL=F", domain.ContextInsideValue, levels, nodes, 100)

	assert.Equal(t, p1, p2)
}
