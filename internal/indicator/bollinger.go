package indicator

import (
	"errors"
	"fmt"
	"math"
)

// Bands holds a Bollinger Bands computation result.
type Bands struct {
	Middle float64
	Upper  float64
	Lower  float64
	StdDev float64
}

// BollingerBands computes Bollinger Bands over the most recent `window`
// prices. When fewer than `window` prices are available the computation
// degrades gracefully and uses all of them; at least 2 are required since
// the standard deviation of a single point is undefined.
//
// The middle band is the mean of the slice, the standard deviation is the
// population one (divide by n), and the outer bands sit numStdDev standard
// deviations away from the middle.
func BollingerBands(prices []float64, window int, numStdDev float64) (Bands, error) {
	if window <= 0 {
		return Bands{}, errors.New("window must be positive")
	}
	if numStdDev <= 0 {
		return Bands{}, errors.New("std dev multiplier must be positive")
	}
	if len(prices) == 0 {
		return Bands{}, ErrEmptyInput
	}
	if err := validatePrices(prices); err != nil {
		return Bands{}, err
	}
	if len(prices) < 2 {
		return Bands{}, fmt.Errorf("need at least 2 prices, have %d: %w", len(prices), ErrInsufficientData)
	}

	slice := prices
	if len(prices) > window {
		slice = prices[len(prices)-window:]
	}

	mean := 0.0
	for _, p := range slice {
		mean += p
	}
	mean /= float64(len(slice))

	variance := 0.0
	for _, p := range slice {
		d := p - mean
		variance += d * d
	}
	variance /= float64(len(slice))
	sd := math.Sqrt(variance)

	return Bands{
		Middle: mean,
		Upper:  mean + numStdDev*sd,
		Lower:  mean - numStdDev*sd,
		StdDev: sd,
	}, nil
}
