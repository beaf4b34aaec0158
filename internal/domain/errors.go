package domain

import "github.com/pkg/errors"

// Analysis failure modes. Each is raised by the stage that detects it and
// propagates unmodified to the caller; a failed run yields no StrategyPlan.
var (
	// ErrInsufficientData indicates an empty candle window.
	ErrInsufficientData = errors.New("insufficient data: candle window is empty")
	// ErrDegenerateRange indicates the window traded at a single flat price,
	// so no price bins can be formed.
	ErrDegenerateRange = errors.New("degenerate price range: window high equals window low")
	// ErrEmptyVolume indicates the window traded zero total volume, leaving
	// the value area and volume nodes undefined.
	ErrEmptyVolume = errors.New("empty volume: window traded zero volume")
	// ErrInvalidConfig indicates an out-of-range analyzer configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
)
