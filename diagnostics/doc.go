// Package diagnostics bundles the standard post-fit residual checks into
// a single battery: Ljung-Box for leftover autocorrelation, Shapiro-Wilk
// for normality, and Breusch-Pagan for heteroscedasticity.
//
//	battery := diagnostics.NewBattery()
//	report, err := battery.Run(model)
//	if err == nil && report.Clean() {
//	    // model residuals pass all checks
//	}
//
// Each test decides "reject" or "fail to reject" against the battery's
// significance level on its own; a test that cannot run on the given
// residuals is reported as skipped rather than failing the whole battery.
package diagnostics
