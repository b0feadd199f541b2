package analyzer

import (
	"fmt"
	"log"
	"time"

	"StockLens/internal/config"
	"StockLens/internal/indicator"
	"StockLens/internal/loader"
	"StockLens/internal/model"
)

// Analyzer orchestrates loading a price series and computing indicators.
type Analyzer struct {
	Source loader.Source
	Config *config.Config
}

// New creates a new Analyzer.
func New(src loader.Source, cfg *config.Config) *Analyzer {
	return &Analyzer{Source: src, Config: cfg}
}

// Evaluate loads the series for symbol and computes the latest close, the
// average close, and the optional indicators. Errors propagate unchanged:
// a requested indicator is never silently skipped or replaced with a
// default value.
func (a *Analyzer) Evaluate(symbol string, withBands, withRSI bool) (*model.IndicatorReport, error) {
	series, err := a.Source.LoadSeries(symbol)
	if err != nil {
		return nil, fmt.Errorf("load series: %w", err)
	}
	if len(series.Points) == 0 {
		return nil, fmt.Errorf("no prices for symbol %s: %w", symbol, indicator.ErrEmptyInput)
	}
	log.Printf("[INFO] loaded %d prices for %s from %s source", len(series.Points), symbol, a.Source.Name())

	latest, _ := series.Latest()

	avg, err := indicator.Average(series.Tail(a.Config.Indicators.AverageWindow))
	if err != nil {
		return nil, fmt.Errorf("average close: %w", err)
	}

	report := &model.IndicatorReport{
		Symbol:      symbol,
		LatestClose: latest,
		Average:     avg,
		GeneratedAt: time.Now(),
	}

	if withBands {
		bands, err := indicator.BollingerBands(series.Closes(),
			a.Config.Indicators.BollingerWindow, a.Config.Indicators.BollingerStdDev)
		if err != nil {
			return nil, fmt.Errorf("bollinger bands: %w", err)
		}
		report.Bands = &model.BollingerBands{
			Middle: bands.Middle,
			Upper:  bands.Upper,
			Lower:  bands.Lower,
		}
	}

	if withRSI {
		reading, err := indicator.RSI(series.Closes(), a.Config.Indicators.RSIPeriod)
		if err != nil {
			return nil, fmt.Errorf("rsi: %w", err)
		}
		report.RSI = &model.RSIReading{
			Value:   reading.Value,
			Defined: reading.Defined,
			Period:  a.Config.Indicators.RSIPeriod,
		}
	}

	return report, nil
}
