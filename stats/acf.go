// Package stats provides statistical tests and functions for time series analysis.
package stats

import (
	"math"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// PACF calculates the Partial Autocorrelation Function using the
// Durbin-Levinson algorithm. Returns PACF values for lags 0 to maxLag,
// with PACF at lag 0 fixed at 1.
func PACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	acf := ACF(series, maxLag)
	if acf == nil {
		return nil
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}

		if den == 0 {
			pacf[k] = 0
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return pacf
}

// CorrelogramResult holds ACF or PACF values with confidence bounds.
type CorrelogramResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // 95% confidence bounds (±1.96/sqrt(n))
}

// ACFWithConfidence calculates ACF with 95% confidence bounds.
func ACFWithConfidence(series *timeseries.Series, maxLag int) *CorrelogramResult {
	return newCorrelogram(ACF(series, maxLag), series.Len())
}

// PACFWithConfidence calculates PACF with 95% confidence bounds.
func PACFWithConfidence(series *timeseries.Series, maxLag int) *CorrelogramResult {
	return newCorrelogram(PACF(series, maxLag), series.Len())
}

func newCorrelogram(values []float64, n int) *CorrelogramResult {
	if values == nil || n <= 0 {
		return nil
	}

	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}

	return &CorrelogramResult{
		Lags:       lags,
		Values:     values,
		ConfBounds: 1.96 / math.Sqrt(float64(n)),
	}
}

// SignificantLags returns the lags (excluding lag 0) where the values
// exceed the confidence bounds in absolute value.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

// CutoffLag returns the lag after which a correlogram "cuts off": the
// largest significant lag k such that every lag above k stays inside the
// confidence bounds. Returns 0 when no lag is significant, and -1 when the
// correlogram tails off (the last lag is still significant).
func CutoffLag(values []float64, confBound float64) int {
	last := 0
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			last = i
		}
	}
	if last == len(values)-1 && last != 0 {
		return -1
	}
	return last
}
