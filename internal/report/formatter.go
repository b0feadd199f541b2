package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"StockLens/internal/model"
)

// Format renders an IndicatorReport as the fixed CLI text block.
func Format(r *model.IndicatorReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Close: $%s\n", fixed2(r.LatestClose)))
	b.WriteString(fmt.Sprintf("Average: $%s\n", fixed2(r.Average)))

	if r.Bands != nil {
		b.WriteString(fmt.Sprintf("Lower Band: $%s\n", fixed2(r.Bands.Lower)))
		b.WriteString(fmt.Sprintf("Upper Band: $%s\n", fixed2(r.Bands.Upper)))
	}

	if r.RSI != nil {
		if r.RSI.Defined {
			b.WriteString(fmt.Sprintf("RSI (%d): %s\n", r.RSI.Period, fixed2(r.RSI.Value)))
		} else {
			b.WriteString(fmt.Sprintf("RSI (%d): undefined (flat series)\n", r.RSI.Period))
		}
	}

	return b.String()
}

// fixed2 renders a value to exactly two decimal places without binary
// float formatting surprises.
func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
