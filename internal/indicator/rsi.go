package indicator

import (
	"errors"
	"fmt"
)

// Reading is an RSI result. Defined is false for a flat window (no gains
// and no losses), where the ratio of average gain to average loss has no
// meaning. A flat window is a valid market state, not an error.
type Reading struct {
	Value   float64
	Defined bool
}

// RSI computes the Relative Strength Index over the most recent `period`
// day-over-day changes, which requires period+1 prices. Gains and losses
// are averaged with a plain mean over the window.
//
//	RS  = avgGain / avgLoss
//	RSI = 100 - 100/(1+RS)
//
// A window with no losses yields exactly 100, one with no gains exactly 0.
func RSI(prices []float64, period int) (Reading, error) {
	if period <= 0 {
		return Reading{}, errors.New("period must be positive")
	}
	if len(prices) == 0 {
		return Reading{}, ErrEmptyInput
	}
	if err := validatePrices(prices); err != nil {
		return Reading{}, err
	}
	if len(prices) < period+1 {
		return Reading{}, fmt.Errorf("need %d prices for a %d-period RSI, have %d: %w",
			period+1, period, len(prices), ErrInsufficientData)
	}

	recent := prices[len(prices)-(period+1):]
	var gainSum, lossSum float64
	for i := 1; i < len(recent); i++ {
		change := recent[i] - recent[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}
	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			return Reading{}, nil // flat window, undefined
		}
		return Reading{Value: 100, Defined: true}, nil
	}

	rs := avgGain / avgLoss
	return Reading{Value: 100 - 100/(1+rs), Defined: true}, nil
}
