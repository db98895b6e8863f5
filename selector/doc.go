// Package selector identifies ARIMA orders for a stationarized series.
//
// Two strategies are provided. Heuristic reads the order off the ACF/PACF
// correlogram using the classical cutoff rule, without fitting anything.
// AICSearch fits every order on a small grid and keeps the lowest AIC (or
// BIC), breaking exact ties toward the model with fewer parameters.
//
//	strategy := selector.NewAICSearch()
//	order, candidates, err := strategy.Propose(diffed, d)
//
// Both strategies report the full candidate trace so a caller can show
// what was considered and why the winner won.
package selector
