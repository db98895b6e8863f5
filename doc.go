// Package gdparima provides the building blocks for a time-series analysis
// of annual GDP data with ARIMA models and residual diagnostics.
//
// The library covers the full workflow of a Box-Jenkins study on a single
// economic indicator series: load the data, difference it to stationarity,
// identify a model order from ACF/PACF or an AIC search, fit the model by
// conditional sum of squares, and check the residuals with a battery of
// hypothesis tests.
//
// # Quick Start
//
// Run the whole workflow with the pipeline package:
//
//	series, _ := worldbank.NewClient(log).Indicator(ctx, "IN", worldbank.GDPCurrentUSD, 1960, 2020)
//	report, err := pipeline.New(pipeline.Options{Forecast: 5}, log).Run(series)
//
// Or drive the stages directly:
//
//	diff := stats.Stationarize(series, 0.05, 2)
//	order, candidates, _ := selector.NewAICSearch().Propose(diff.Series, diff.Order)
//	model := arima.New(order.P, order.D, order.Q)
//	if err := model.Fit(series); err != nil { ... }
//	report, _ := diagnostics.NewBattery().Run(model)
//
// # Packages
//
//   - timeseries: series data structure, differencing, integration, CSV I/O
//   - stats: stationarity, autocorrelation, normality and heteroscedasticity tests
//   - arima: ARIMA(p,d,q) estimation by conditional sum of squares
//   - selector: order identification strategies (heuristic and AIC search)
//   - diagnostics: residual diagnostic battery
//   - pipeline: sequential orchestration of the stages above
//   - worldbank: World Bank open data API client
//   - config: TOML/environment configuration for the CLI
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Royston, P. (1995). AS R94: A remark on algorithm AS 181 (Shapiro-Wilk W)
package gdparima
