package indicator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an indicator is asked to work on a
	// series with no prices at all.
	ErrEmptyInput = errors.New("price series is empty")

	// ErrInsufficientData is returned when the series is non-empty but
	// shorter than the indicator requires.
	ErrInsufficientData = errors.New("not enough price data")

	// ErrInvalidPrice is returned when the series contains a value that
	// cannot be a closing price (negative or NaN).
	ErrInvalidPrice = errors.New("invalid price in series")
)

// validatePrices rejects series containing values that cannot be closing
// prices. Indicators fail fast on bad input instead of coercing it.
func validatePrices(prices []float64) error {
	for i, p := range prices {
		if p < 0 || p != p { // p != p catches NaN
			return fmt.Errorf("index %d: value %v: %w", i, p, ErrInvalidPrice)
		}
	}
	return nil
}
