package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestValidateSeries_Empty(t *testing.T) {
	if err := ValidateSeries(nil); err != nil {
		t.Errorf("empty series should be valid, got %v", err)
	}
}

func TestValidateSeries_Valid(t *testing.T) {
	series := []Bar{
		{Time: day(0), Open: 100, High: 101, Low: 99, Close: 100, Volume: 10},
		{Time: day(1), Open: 100, High: 102, Low: 99, Close: 101, Volume: 10},
	}
	if err := ValidateSeries(series); err != nil {
		t.Errorf("expected valid series, got %v", err)
	}
}

func TestValidateSeries_DuplicateTimestamp(t *testing.T) {
	series := []Bar{
		{Time: day(0), Open: 100, High: 101, Low: 99, Close: 100, Volume: 10},
		{Time: day(0), Open: 100, High: 102, Low: 99, Close: 101, Volume: 10},
	}
	err := ValidateSeries(series)
	if !errors.Is(err, ErrInvalidSeries) {
		t.Errorf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestValidateSeries_OutOfOrder(t *testing.T) {
	series := []Bar{
		{Time: day(1), Open: 100, High: 101, Low: 99, Close: 100, Volume: 10},
		{Time: day(0), Open: 100, High: 102, Low: 99, Close: 101, Volume: 10},
	}
	if err := ValidateSeries(series); !errors.Is(err, ErrInvalidSeries) {
		t.Errorf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestValidateSeries_NonFinitePrice(t *testing.T) {
	series := []Bar{
		{Time: day(0), Open: 100, High: math.NaN(), Low: 99, Close: 100, Volume: 10},
	}
	if err := ValidateSeries(series); !errors.Is(err, ErrInvalidSeries) {
		t.Errorf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestClosePrices(t *testing.T) {
	series := []Bar{
		{Time: day(0), Open: 1, High: 1, Low: 1, Close: 10, Volume: 1},
		{Time: day(1), Open: 1, High: 1, Low: 1, Close: 20, Volume: 1},
	}
	prices := ClosePrices(series)
	if len(prices) != 2 || prices[0] != 10 || prices[1] != 20 {
		t.Errorf("ClosePrices() = %v, want [10 20]", prices)
	}
}
