package indicator

import (
	"errors"
	"math"
	"testing"
)

func TestRSI_PureUptrend(t *testing.T) {
	got, err := RSI(seq(100, 114), 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if !got.Defined || got.Value != 100 {
		t.Errorf("RSI(uptrend) = %+v, want defined 100", got)
	}
}

func TestRSI_PureDowntrend(t *testing.T) {
	prices := make([]float64, 15)
	for i := range prices {
		prices[i] = float64(114 - i)
	}
	got, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if !got.Defined || got.Value != 0 {
		t.Errorf("RSI(downtrend) = %+v, want defined 0", got)
	}
}

func TestRSI_Regression(t *testing.T) {
	// 14 changes: gains sum 17, losses sum 4 -> RS 4.25 -> RSI 80.952...
	prices := []float64{10, 12, 11, 13, 15, 14, 16, 18, 17, 19, 20, 21, 20, 22, 23}
	got, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if !got.Defined {
		t.Fatal("RSI() undefined, want defined")
	}
	if math.Abs(got.Value-80.95) > 0.005 {
		t.Errorf("RSI() = %.4f, want 80.95", got.Value)
	}
}

func TestRSI_FlatSeriesUndefined(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 100
	}
	got, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if got.Defined {
		t.Errorf("RSI(flat) = %+v, want undefined", got)
	}
}

func TestRSI_Bounds(t *testing.T) {
	prices := []float64{50, 53, 49, 55, 52, 58, 54, 60, 57, 63, 59, 65, 61, 67, 64, 70}
	got, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if !got.Defined || got.Value < 0 || got.Value > 100 {
		t.Errorf("RSI() = %+v, want defined value in [0,100]", got)
	}
}

func TestRSI_CustomPeriod(t *testing.T) {
	got, err := RSI([]float64{100, 101, 102, 103, 104}, 4)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if !got.Defined || got.Value != 100 {
		t.Errorf("RSI(period=4) = %+v, want defined 100", got)
	}
}

func TestRSI_Errors(t *testing.T) {
	if _, err := RSI(nil, 14); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty series error = %v, want ErrEmptyInput", err)
	}
	if _, err := RSI(seq(100, 113), 14); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("14 prices for 14-period error = %v, want ErrInsufficientData", err)
	}
	if _, err := RSI([]float64{100, -1, 102}, 2); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative price error = %v, want ErrInvalidPrice", err)
	}
	if _, err := RSI([]float64{100, 101}, 0); err == nil {
		t.Error("zero period: expected error")
	}
}
