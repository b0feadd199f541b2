package model

import "time"

// PricePoint is one trading day's closing price. Date is the zero value
// when the source row carried no parseable date.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the ordered closing prices for one symbol,
// chronological with the most recent last.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Closes returns just the closing prices, in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Tail returns the most recent n closes, or all of them when n <= 0 or
// the series is shorter than n.
func (s *PriceSeries) Tail(n int) []float64 {
	closes := s.Closes()
	if n <= 0 || len(closes) <= n {
		return closes
	}
	return closes[len(closes)-n:]
}

// Latest returns the most recent closing price. Points carrying dates win
// over file order: the maximum-dated point is preferred, and the last
// point is the fallback when no row had a date. ok is false for an empty
// series.
func (s *PriceSeries) Latest() (close float64, ok bool) {
	if len(s.Points) == 0 {
		return 0, false
	}
	var best *PricePoint
	for i := range s.Points {
		p := &s.Points[i]
		if p.Date.IsZero() {
			continue
		}
		if best == nil || p.Date.After(best.Date) {
			best = p
		}
	}
	if best != nil {
		return best.Close, true
	}
	return s.Points[len(s.Points)-1].Close, true
}
