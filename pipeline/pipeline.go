// Package pipeline runs the full GDP analysis workflow.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/arima"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/diagnostics"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/selector"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/stats"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// Options configure a pipeline run.
type Options struct {
	Alpha    float64 // significance level for all tests (default: 0.05)
	MaxD     int     // differencing cap (default: 2)
	LjungLag int     // Ljung-Box lag for diagnostics (default: 10)
	Forecast int     // forecast steps, 0 disables
	Strategy selector.Strategy
}

// Pipeline ties loading, differencing, identification, estimation and
// diagnostics together.
type Pipeline struct {
	opts Options
	log  zerolog.Logger
}

// New creates a pipeline. A nil strategy defaults to the AIC grid search.
func New(opts Options, log zerolog.Logger) *Pipeline {
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		opts.Alpha = 0.05
	}
	if opts.MaxD <= 0 {
		opts.MaxD = 2
	}
	if opts.LjungLag <= 0 {
		opts.LjungLag = 10
	}
	if opts.Strategy == nil {
		opts.Strategy = selector.NewAICSearch()
	}
	return &Pipeline{
		opts: opts,
		log:  log.With().Str("component", "pipeline").Logger(),
	}
}

// Report holds everything a pipeline run produced.
type Report struct {
	Series       *timeseries.Series
	Differencing *stats.DifferencingResult
	Order        arima.Order
	Candidates   []selector.Candidate
	Model        *arima.Model
	Diagnostics  *diagnostics.Report
	Forecasts    []float64
}

// Run analyzes a series end to end: difference to stationarity, identify
// the order, fit, and test the residuals. Reaching the differencing cap
// without stationarity is logged as a warning and the run continues with
// the capped order.
func (p *Pipeline) Run(series *timeseries.Series) (*Report, error) {
	if series == nil || series.Len() == 0 {
		return nil, errors.New("no data to analyze")
	}

	p.log.Info().
		Int("observations", series.Len()).
		Str("series", series.Name).
		Msg("Starting analysis")

	diffResult := stats.Stationarize(series, p.opts.Alpha, p.opts.MaxD)
	if !diffResult.Stationary {
		p.log.Warn().
			Int("order", diffResult.Order).
			Msg("Differencing cap reached without achieving stationarity")
	} else {
		p.log.Info().
			Int("order", diffResult.Order).
			Msg("Series stationary after differencing")
	}

	order, candidates, err := p.opts.Strategy.Propose(diffResult.Series, diffResult.Order)
	if err != nil {
		return nil, fmt.Errorf("order identification failed: %w", err)
	}
	p.log.Info().
		Stringer("order", order).
		Int("candidates", len(candidates)).
		Msg("Order identified")

	model := arima.New(order.P, order.D, order.Q)
	if err := model.Fit(series); err != nil {
		return nil, fmt.Errorf("fitting %s: %w", order, err)
	}
	p.log.Info().
		Float64("aic", model.AIC).
		Float64("bic", model.BIC).
		Float64("variance", model.Variance).
		Msg("Model fitted")

	battery := &diagnostics.Battery{Alpha: p.opts.Alpha, LjungLag: p.opts.LjungLag}
	diag, err := battery.Run(model)
	if err != nil {
		return nil, fmt.Errorf("residual diagnostics: %w", err)
	}
	for _, res := range diag.Results {
		event := p.log.Info()
		if res.Decision == diagnostics.Reject {
			event = p.log.Warn()
		}
		event.
			Str("test", res.Name).
			Float64("statistic", res.Statistic).
			Float64("p", res.PValue).
			Str("decision", string(res.Decision)).
			Msg("Residual check")
	}

	report := &Report{
		Series:       series,
		Differencing: diffResult,
		Order:        order,
		Candidates:   candidates,
		Model:        model,
		Diagnostics:  diag,
	}

	if p.opts.Forecast > 0 {
		forecasts, err := model.Predict(p.opts.Forecast)
		if err != nil {
			return nil, fmt.Errorf("forecasting: %w", err)
		}
		report.Forecasts = forecasts
	}

	return report, nil
}
