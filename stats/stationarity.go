package stats

import (
	"math"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64 // Critical values at 1%, 5%, 10%
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller test for a unit root.
// The null hypothesis is that the series has a unit root (is non-stationary).
// If p-value < 0.05, the null is rejected and the series is treated as
// stationary. maxLag <= 0 selects the default (n-1)^(1/3) lag order.
func ADF(series *timeseries.Series, maxLag int) *ADFResult {
	n := series.Len()
	if n < 10 {
		return nil
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := series.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i * delta_y_{t-i}) + e_t
	// The test statistic is the t-ratio of beta; beta = 0 means a unit root.
	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil
	}

	y := make([]float64, nObs)
	x := make([][]float64, nObs)

	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = diff.Values[t]

		row := make([]float64, 2+maxLag)
		row[0] = 1
		row[1] = series.Values[t]
		for j := 1; j <= maxLag; j++ {
			row[1+j] = diff.Values[t-j]
		}
		x[i] = row
	}

	fit, err := ols(x, y)
	if err != nil || fit.StdErrors[1] == 0 {
		return nil
	}

	tStat := fit.Coeffs[1] / fit.StdErrors[1]
	pValue := adfPValue(tStat)

	return &ADFResult{
		Statistic: tStat,
		PValue:    pValue,
		Lags:      maxLag,
		NObs:      nObs,
		CriticalVals: map[string]float64{
			"1%":  -3.43,
			"5%":  -2.86,
			"10%": -2.57,
		},
		IsStationary: pValue < 0.05,
	}
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	CriticalVals map[string]float64
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for stationarity.
// The null hypothesis is that the series is stationary. regression is "c"
// for level stationarity or "ct" for trend stationarity. nlags <= 0 selects
// the default bandwidth.
func KPSS(series *timeseries.Series, regression string, nlags int) *KPSSResult {
	n := series.Len()
	if n < 10 {
		return nil
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}

	residuals := make([]float64, n)
	if regression == "ct" {
		// Remove a linear trend.
		x := make([][]float64, n)
		for i := range x {
			x[i] = []float64{1, float64(i)}
		}
		fit, err := ols(x, series.Values)
		if err != nil {
			return nil
		}
		copy(residuals, fit.Residuals)
	} else {
		mean := series.Mean()
		for i, v := range series.Values {
			residuals[i] = v - mean
		}
	}

	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Long-run variance with Bartlett weights (Newey-West).
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)

	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}
	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	kpssStat := etaSq / (float64(n) * float64(n) * s2)

	var criticalVals map[string]float64
	if regression == "ct" {
		criticalVals = map[string]float64{
			"10%": 0.119,
			"5%":  0.146,
			"1%":  0.216,
		}
	} else {
		criticalVals = map[string]float64{
			"10%": 0.347,
			"5%":  0.463,
			"1%":  0.739,
		}
	}

	pValue := kpssPValue(kpssStat, regression)

	return &KPSSResult{
		Statistic:    kpssStat,
		PValue:       pValue,
		Lags:         nlags,
		CriticalVals: criticalVals,
		IsStationary: pValue >= 0.05,
	}
}

// adfQuantiles are asymptotic quantiles of the Dickey-Fuller tau
// distribution for the constant-only regression (MacKinnon 1994).
var adfQuantiles = [][2]float64{
	{-3.96, 0.001},
	{-3.43, 0.010},
	{-2.86, 0.050},
	{-2.57, 0.100},
	{-1.94, 0.250},
	{-1.62, 0.500},
	{-0.50, 0.800},
	{0.60, 0.990},
}

// adfPValue interpolates a p-value for the ADF statistic over the
// MacKinnon asymptotic quantiles. Continuous and monotone in the statistic.
func adfPValue(stat float64) float64 {
	if stat <= adfQuantiles[0][0] {
		return adfQuantiles[0][1]
	}
	last := adfQuantiles[len(adfQuantiles)-1]
	if stat >= last[0] {
		return last[1]
	}
	for i := 1; i < len(adfQuantiles); i++ {
		lo, hi := adfQuantiles[i-1], adfQuantiles[i]
		if stat <= hi[0] {
			frac := (stat - lo[0]) / (hi[0] - lo[0])
			return lo[1] + frac*(hi[1]-lo[1])
		}
	}
	return last[1]
}

var kpssQuantilesC = [][2]float64{
	{0.347, 0.100},
	{0.463, 0.050},
	{0.574, 0.025},
	{0.739, 0.010},
}

var kpssQuantilesCT = [][2]float64{
	{0.119, 0.100},
	{0.146, 0.050},
	{0.176, 0.025},
	{0.216, 0.010},
}

// kpssPValue interpolates a p-value for the KPSS statistic. Values outside
// the tabulated range are clamped to [0.01, 0.10] as is conventional.
func kpssPValue(stat float64, regression string) float64 {
	table := kpssQuantilesC
	if regression == "ct" {
		table = kpssQuantilesCT
	}

	if stat <= table[0][0] {
		return table[0][1]
	}
	last := table[len(table)-1]
	if stat >= last[0] {
		return last[1]
	}
	for i := 1; i < len(table); i++ {
		lo, hi := table[i-1], table[i]
		if stat <= hi[0] {
			frac := (stat - lo[0]) / (hi[0] - lo[0])
			return lo[1] + frac*(hi[1]-lo[1])
		}
	}
	return last[1]
}
