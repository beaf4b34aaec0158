package domain

// MarketContext classifies the current price relative to the value area.
type MarketContext int

const (
	// ContextInsideValue means price is inside [VAL, VAH]: balanced, range-bound.
	ContextInsideValue MarketContext = iota
	// ContextAboveValue means price is above VAH: imbalanced, trending up.
	ContextAboveValue
	// ContextBelowValue means price is below VAL: imbalanced, trending down.
	ContextBelowValue
)

// String returns the human-readable context label.
func (c MarketContext) String() string {
	switch c {
	case ContextAboveValue:
		return "ABOVE VALUE"
	case ContextBelowValue:
		return "BELOW VALUE"
	default:
		return "INSIDE VALUE"
	}
}
