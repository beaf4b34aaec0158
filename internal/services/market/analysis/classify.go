// Package analysis provides market structure studies on top of a volume
// profile: value-area classification and support/resistance strength ranking.
package analysis

import "github.com/quantfold/optzone/internal/domain"

// Classify labels the current price relative to the value area. The interval
// [val, vah] is closed, so touching either boundary still counts as inside.
func Classify(price, vah, val float64) domain.MarketContext {
	switch {
	case price > vah:
		return domain.ContextAboveValue
	case price < val:
		return domain.ContextBelowValue
	default:
		return domain.ContextInsideValue
	}
}
