package loader

import (
	"errors"
	"time"

	"StockLens/internal/model"
)

// ErrParse is returned (wrapped) when a source row cannot be read as a
// valid non-negative closing price.
var ErrParse = errors.New("cannot parse price data")

// Source defines the interface for loading a price series.
type Source interface {
	LoadSeries(symbol string) (*model.PriceSeries, error)
	Name() string
}

// dateLayouts are the formats a source date field may use. Rows with
// dates in any other format keep a zero Date and fall back to row order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Series map[string]*model.PriceSeries
	Err    error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) LoadSeries(symbol string) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return &model.PriceSeries{Symbol: symbol}, nil
}
