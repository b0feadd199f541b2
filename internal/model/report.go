package model

import "time"

// BollingerBands is the (middle, upper, lower) triple for display.
type BollingerBands struct {
	Middle float64
	Upper  float64
	Lower  float64
}

// RSIReading is an RSI value for display. Defined is false for a flat
// window where the index has no meaning.
type RSIReading struct {
	Value   float64
	Defined bool
	Period  int
}

// IndicatorReport holds everything computed during one invocation.
// Bands and RSI are nil unless requested.
type IndicatorReport struct {
	Symbol      string
	LatestClose float64
	Average     float64
	Bands       *BollingerBands
	RSI         *RSIReading
	GeneratedAt time.Time
}
