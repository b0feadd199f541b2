package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCSVSource_LoadSeries(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"symbol,date,close",
		"AAPL,2024-01-02,150.0",
		"GOOG,2024-01-02,2800.0",
		"AAPL,2024-01-03,152.5",
		"AAPL,2024-01-04,151.0",
	}, "\n"))

	series, err := NewCSVSource(path).LoadSeries("AAPL")
	if err != nil {
		t.Fatalf("LoadSeries() error = %v", err)
	}
	closes := series.Closes()
	want := []float64{150.0, 152.5, 151.0}
	if len(closes) != len(want) {
		t.Fatalf("closes = %v, want %v", closes, want)
	}
	for i := range want {
		if closes[i] != want[i] {
			t.Errorf("closes[%d] = %v, want %v", i, closes[i], want[i])
		}
	}
	latest, ok := series.Latest()
	if !ok || latest != 151.0 {
		t.Errorf("Latest() = %v, %v; want 151.0, true", latest, ok)
	}
}

func TestCSVSource_NoSymbolColumn(t *testing.T) {
	path := writeCSV(t, "date,close\n2024-01-02,10.5\n2024-01-03,11.0\n")
	series, err := NewCSVSource(path).LoadSeries("AAPL")
	if err != nil {
		t.Fatalf("LoadSeries() error = %v", err)
	}
	if len(series.Points) != 2 {
		t.Errorf("points = %d, want 2 (all rows belong to the requested symbol)", len(series.Points))
	}
}

func TestCSVSource_BadCloseFailsFast(t *testing.T) {
	path := writeCSV(t, "symbol,date,close\nAAPL,2024-01-02,150.0\nAAPL,2024-01-03,oops\n")
	_, err := NewCSVSource(path).LoadSeries("AAPL")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("LoadSeries() error = %v, want ErrParse", err)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q should name the offending row", err)
	}
}

func TestCSVSource_NegativeClose(t *testing.T) {
	path := writeCSV(t, "close\n100\n-3\n")
	if _, err := NewCSVSource(path).LoadSeries("AAPL"); !errors.Is(err, ErrParse) {
		t.Errorf("LoadSeries() error = %v, want ErrParse", err)
	}
}

func TestCSVSource_MissingCloseColumn(t *testing.T) {
	path := writeCSV(t, "symbol,date,open\nAAPL,2024-01-02,150.0\n")
	if _, err := NewCSVSource(path).LoadSeries("AAPL"); !errors.Is(err, ErrParse) {
		t.Errorf("LoadSeries() error = %v, want ErrParse", err)
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).LoadSeries("AAPL")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSeries() error = %v, want os.ErrNotExist", err)
	}
}

func TestCSVSource_UnknownSymbolGivesEmptySeries(t *testing.T) {
	path := writeCSV(t, "symbol,close\nAAPL,150.0\n")
	series, err := NewCSVSource(path).LoadSeries("MSFT")
	if err != nil {
		t.Fatalf("LoadSeries() error = %v", err)
	}
	if len(series.Points) != 0 {
		t.Errorf("points = %d, want 0", len(series.Points))
	}
}
