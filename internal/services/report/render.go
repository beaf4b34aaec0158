// Package report renders a StrategyPlan to the console.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/quantfold/optzone/internal/domain"
	"github.com/quantfold/optzone/pkg/indicators"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"}).
			Padding(0, 2).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(26)
	priceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	upStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})

	contextStyles = map[domain.MarketContext]lipgloss.Style{
		domain.ContextInsideValue: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		domain.ContextAboveValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		domain.ContextBelowValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
)

// Renderer formats plans and supporting studies for the terminal.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the full console report for one analysis run.
func (r *Renderer) Render(plan domain.StrategyPlan, strength []domain.LevelStrength, trend *indicators.TrendContext) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("OPTION ZONE ANALYZER  %s", plan.Symbol)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("KEY LEVELS"))
	b.WriteString("\n")
	r.writeLevel(&b, "Current Price", plan.Spot, plan.Spot)
	r.writeLevel(&b, "VAH (Value Area High)", plan.VAH, plan.Spot)
	r.writeLevel(&b, "POC (Point of Control)", plan.POC, plan.Spot)
	r.writeLevel(&b, "VAL (Value Area Low)", plan.VAL, plan.Spot)

	b.WriteString(sectionStyle.Render("MARKET CONTEXT"))
	b.WriteString("\n")
	b.WriteString(contextStyles[plan.Context].Render(plan.Context.String()))
	b.WriteString("\n")
	b.WriteString(plan.Narrative)
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("STRATEGIC BIAS"))
	b.WriteString("\n")
	for _, line := range plan.Bias {
		fmt.Fprintf(&b, "  • %s\n", line)
	}
	fmt.Fprintf(&b, "  Suggested structure: %s\n", plan.StrategyFamily)

	if len(strength) > 0 {
		b.WriteString(sectionStyle.Render("STRONGEST LEVELS"))
		b.WriteString("\n")
		shown := strength
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, l := range shown {
			fmt.Fprintf(&b, "  #%d  %s  strength %.1f  (%d touches)\n",
				l.Rank, priceStyle.Render(fmt.Sprintf("%.2f", l.Price)), l.Normalized, l.Touches)
		}
	}

	if trend != nil {
		b.WriteString(sectionStyle.Render("TREND CONTEXT"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  EMA20 %.2f  EMA50 %.2f  RSI14 %.1f  ATR14 %.2f\n",
			trend.EMA20, trend.EMA50, trend.RSI14, trend.ATR14)
	}

	return b.String()
}

func (r *Renderer) writeLevel(b *strings.Builder, label string, level, spot decimal.Decimal) {
	diff := spot.Sub(level)

	var rel string
	switch {
	case diff.IsZero():
		rel = dimStyle.Render("-")
	case diff.IsNegative():
		rel = downStyle.Render(diff.StringFixed(2))
	default:
		rel = upStyle.Render("+" + diff.StringFixed(2))
	}

	fmt.Fprintf(b, "  %s %s  %s\n",
		labelStyle.Render(label),
		priceStyle.Render(level.StringFixed(2)),
		rel)
}
