// Package stats provides statistical tests and analysis functions for time series.
//
// This package covers the hypothesis tests used throughout a Box-Jenkins
// workflow: stationarity checks before modeling, autocorrelation analysis
// for order identification, and residual diagnostics after fitting.
//
// # Stationarity and Differencing
//
//	// Augmented Dickey-Fuller test
//	// H0: series has a unit root (non-stationary)
//	adf := stats.ADF(series, 0)
//
//	// KPSS test
//	// H0: series is stationary
//	kpss := stats.KPSS(series, "c", 0)
//
//	// Difference until the ADF test rejects, capped at 2 passes
//	result := stats.Stationarize(series, 0.05, 2)
//	// result.Order, result.Steps, result.Stationary
//
// # Autocorrelation Functions
//
//	acf := stats.ACF(series, 20)
//	pacf := stats.PACF(series, 20)
//
//	corr := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(corr.Values, corr.ConfBounds)
//
// # Residual Diagnostics
//
//	// Ljung-Box test for autocorrelation
//	lb := stats.LjungBox(residuals, 10, p+q)
//
//	// Shapiro-Wilk test for normality (Royston AS R94)
//	sw := stats.ShapiroWilk(residuals.Values)
//
//	// Breusch-Pagan test for heteroscedasticity
//	bp := stats.BreuschPagan(residuals.Values, fittedValues)
//
// Every test returns a result struct with the statistic and p-value; a
// statistically unfavorable outcome is reported, never returned as an error.
package stats
