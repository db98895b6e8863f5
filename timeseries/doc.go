// Package timeseries provides time series data structures and utilities.
//
// The Series type holds an ordered sequence of timestamped observations.
// Series are treated as immutable: every transformation (differencing,
// slicing, integration) returns a new Series.
//
// # Creating Series
//
//	// From raw values
//	series := timeseries.New(values)
//
//	// Annual observations (GDP-style data)
//	series := timeseries.NewAnnual(1960, values)
//
//	// From CSV with year,value rows
//	series, err := timeseries.LoadCSV("gdp.csv", nil)
//
// # Differencing and Integration
//
// Repeated first differencing and its exact inverse:
//
//	diffed := series.DiffN(2)
//	restored := timeseries.Integrate(diffed, series.Values[:2])
//	// restored.Values == series.Values
package timeseries
