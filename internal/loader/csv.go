package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"StockLens/internal/model"
)

// CSVSource reads daily closing prices from a CSV file with a header row.
// A `close` column is required; `symbol` and `date` columns are optional.
// When the file has no symbol column every row belongs to the requested
// symbol. Row order is taken as chronological, most recent last.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource { return &CSVSource{Path: path} }

func (c *CSVSource) Name() string { return "csv" }

func (c *CSVSource) LoadSeries(symbol string) (*model.PriceSeries, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row: %w", c.Path, ErrParse)
	}

	symbolCol, dateCol, closeCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "symbol":
			symbolCol = i
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if closeCol < 0 {
		return nil, fmt.Errorf("%s: no close column in header: %w", c.Path, ErrParse)
	}

	series := &model.PriceSeries{Symbol: symbol}
	for n, rec := range records[1:] {
		row := n + 2 // 1-based, counting the header
		if symbolCol >= 0 && strings.TrimSpace(rec[symbolCol]) != symbol {
			continue
		}
		if closeCol >= len(rec) {
			return nil, fmt.Errorf("%s row %d: missing close value: %w", c.Path, row, ErrParse)
		}
		closeStr := strings.TrimSpace(rec[closeCol])
		close, err := strconv.ParseFloat(closeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: close %q: %w", c.Path, row, closeStr, ErrParse)
		}
		if close < 0 {
			return nil, fmt.Errorf("%s row %d: negative close %v: %w", c.Path, row, close, ErrParse)
		}
		point := model.PricePoint{Close: close}
		if dateCol >= 0 && dateCol < len(rec) {
			point.Date = parseDate(strings.TrimSpace(rec[dateCol]))
		}
		series.Points = append(series.Points, point)
	}
	return series, nil
}
