package indicator

// Average computes the arithmetic mean of the given closing prices.
func Average(prices []float64) (float64, error) {
	if len(prices) == 0 {
		return 0, ErrEmptyInput
	}
	if err := validatePrices(prices); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices)), nil
}
