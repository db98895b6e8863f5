package stats

import (
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// StationarityStep records the unit-root test outcome at one differencing order.
type StationarityStep struct {
	Order     int
	Statistic float64
	PValue    float64
	Rejected  bool // unit-root null rejected at the requested level
}

// DifferencingResult holds a series differenced until stationarity together
// with the order applied and the per-pass test trace.
type DifferencingResult struct {
	Series     *timeseries.Series
	Order      int
	Steps      []StationarityStep
	Stationary bool // false when maxOrder was reached without rejection
}

// Stationarize applies first differencing until the ADF test rejects a unit
// root at level alpha, or maxOrder passes have been applied. When the cap is
// reached without rejection the last differenced series is returned with
// Stationary set to false rather than failing.
func Stationarize(series *timeseries.Series, alpha float64, maxOrder int) *DifferencingResult {
	if alpha <= 0 || alpha >= 1 {
		alpha = 0.05
	}
	if maxOrder < 0 {
		maxOrder = 2
	}

	result := &DifferencingResult{Series: series}
	current := series

	for d := 0; ; d++ {
		adf := ADF(current, 0)
		if adf == nil {
			// Series too short to test; proceed with what we have.
			result.Series = current
			result.Order = d
			return result
		}

		result.Steps = append(result.Steps, StationarityStep{
			Order:     d,
			Statistic: adf.Statistic,
			PValue:    adf.PValue,
			Rejected:  adf.PValue < alpha,
		})

		if adf.PValue < alpha {
			result.Series = current
			result.Order = d
			result.Stationary = true
			return result
		}

		if d == maxOrder {
			result.Series = current
			result.Order = d
			return result
		}

		current = current.Diff()
	}
}

// NDiffs determines the number of first differences required for
// stationarity. Returns a value in [0, maxD]. testType selects the
// criterion: "adf" (default) or "kpss".
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}

	if testType == "kpss" {
		current := series
		for d := 0; d < maxD; d++ {
			result := KPSS(current, "c", 0)
			if result != nil && result.IsStationary {
				return d
			}
			current = current.Diff()
			if current.Len() < 10 {
				return d
			}
		}
		return maxD
	}

	return Stationarize(series, 0.05, maxD).Order
}
