package stats

import (
	"errors"
	"math"

	"EconTrack/internal/model"
)

// TradingDaysPerYear is the annualization base for daily volatility.
const TradingDaysPerYear = 252

// Change returns the fractional change from previous to current.
func Change(current, previous float64) (float64, error) {
	if previous == 0 {
		return 0, errors.New("previous value is zero")
	}
	return (current - previous) / previous, nil
}

// Returns computes close-to-close fractional returns. The output has one
// entry fewer than the input; a zero previous close yields a zero return.
func Returns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		r, err := Change(values[i], values[i-1])
		if err != nil {
			r = 0
		}
		out = append(out, r)
	}
	return out
}

// RollingStd computes the sample standard deviation over a trailing window.
// Entry i of the result covers values[i : i+window]; positions without a
// full window are dropped, so the result has len(values)-window+1 entries.
func RollingStd(values []float64, window int) ([]float64, error) {
	if window < 2 {
		return nil, errors.New("window must be at least 2")
	}
	if len(values) < window {
		return nil, errors.New("not enough data for rolling window")
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := 0; i+window <= len(values); i++ {
		out = append(out, sampleStd(values[i:i+window]))
	}
	return out, nil
}

// sampleStd is the n-1 denominator standard deviation.
func sampleStd(window []float64) float64 {
	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(len(window))
	var sum float64
	for _, v := range window {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(window)-1))
}

// AnnualizedVol scales a daily standard deviation to an annual figure.
func AnnualizedVol(dailyStd float64) float64 {
	return dailyStd * math.Sqrt(TradingDaysPerYear)
}

// Rebase scales values so the first entry equals base. Used for comparison
// charts where indices of different magnitudes start at 100.
func Rebase(values []float64, base float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, errors.New("no values to rebase")
	}
	if values[0] == 0 {
		return nil, errors.New("first value is zero")
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / values[0] * base
	}
	return out, nil
}

// Closes extracts closing prices from daily bars.
func Closes(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
