package chart

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockLens/internal/model"
)

// WriteHTML renders the closing price series as an ECharts line chart and
// writes it to path as a standalone HTML page. When the report carries
// Bollinger Bands they are drawn as constant overlay lines.
func WriteHTML(series *model.PriceSeries, report *model.IndicatorReport, width, height, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: series.Symbol,
			Width:     width,
			Height:    height,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s daily close", series.Symbol),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: true,
		}),
	)

	xAxis := make([]string, len(series.Points))
	closes := make([]opts.LineData, len(series.Points))
	for i, p := range series.Points {
		if p.Date.IsZero() {
			xAxis[i] = strconv.Itoa(i + 1)
		} else {
			xAxis[i] = p.Date.Format("2006-01-02")
		}
		closes[i] = opts.LineData{Value: p.Close}
	}

	line.SetXAxis(xAxis).AddSeries("Close", closes)

	if report != nil && report.Bands != nil {
		line.AddSeries("Upper Band", constantSeries(report.Bands.Upper, len(series.Points)))
		line.AddSeries("Middle Band", constantSeries(report.Bands.Middle, len(series.Points)))
		line.AddSeries("Lower Band", constantSeries(report.Bands.Lower, len(series.Points)))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func constantSeries(v float64, n int) []opts.LineData {
	data := make([]opts.LineData, n)
	for i := range data {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
