// Package diagnostics runs residual checks on fitted ARIMA models.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/arima"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/stats"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// Decision is the outcome of a single hypothesis test at the battery's
// significance level.
type Decision string

const (
	Reject       Decision = "reject"
	FailToReject Decision = "fail to reject"
	Skipped      Decision = "skipped"
)

// Result holds one diagnostic test's outcome. Null states the hypothesis
// being tested so a report reads without a statistics reference at hand.
type Result struct {
	Name      string
	Null      string
	Statistic float64
	PValue    float64
	Decision  Decision
	Detail    string // extra context, e.g. why a test was skipped
}

// Report collects the outcomes of a full battery run.
type Report struct {
	Alpha   float64
	Results []Result
}

// Clean reports whether no test in the battery rejected its null. Skipped
// tests do not count against the residuals.
func (r *Report) Clean() bool {
	for _, res := range r.Results {
		if res.Decision == Reject {
			return false
		}
	}
	return true
}

// Lookup returns the result with the given name, or nil.
func (r *Report) Lookup(name string) *Result {
	for i := range r.Results {
		if r.Results[i].Name == name {
			return &r.Results[i]
		}
	}
	return nil
}

// Battery runs independence, normality and homoscedasticity checks on a
// model's residuals. Tests run independently: one failing or being skipped
// never suppresses the others.
type Battery struct {
	Alpha    float64 // significance level (default: 0.05)
	LjungLag int     // Ljung-Box lag (default: 10)
}

// NewBattery returns a Battery with the conventional defaults.
func NewBattery() *Battery {
	return &Battery{Alpha: 0.05, LjungLag: 10}
}

// Run executes the battery against a fitted model.
func (b *Battery) Run(model *arima.Model) (*Report, error) {
	if model == nil || !model.Fitted() {
		return nil, errors.New("diagnostics require a fitted model")
	}
	return b.RunOn(model.Residuals(), model.FittedValues(), model.Order.P+model.Order.Q)
}

// RunOn executes the battery against raw residuals and fitted values.
// fitdf is the number of estimated ARMA coefficients, subtracted from the
// Ljung-Box degrees of freedom.
func (b *Battery) RunOn(residuals, fitted []float64, fitdf int) (*Report, error) {
	if len(residuals) == 0 {
		return nil, errors.New("no residuals to test")
	}

	alpha := b.Alpha
	if alpha <= 0 || alpha >= 1 {
		alpha = 0.05
	}
	lag := b.LjungLag
	if lag <= 0 {
		lag = 10
	}

	report := &Report{Alpha: alpha}
	residSeries := timeseries.New(residuals)

	if lb := stats.LjungBox(residSeries, lag, fitdf); lb != nil {
		report.Results = append(report.Results, decide(Result{
			Name:      "ljung-box",
			Null:      "residuals are independently distributed",
			Statistic: lb.Statistic,
			PValue:    lb.PValue,
		}, alpha))
	} else {
		report.Results = append(report.Results, skipped("ljung-box",
			"residuals are independently distributed",
			fmt.Sprintf("too few residuals for a lag-%d test", lag)))
	}

	if sw := stats.ShapiroWilk(residuals); sw != nil {
		report.Results = append(report.Results, decide(Result{
			Name:      "shapiro-wilk",
			Null:      "residuals are normally distributed",
			Statistic: sw.Statistic,
			PValue:    sw.PValue,
		}, alpha))
	} else {
		report.Results = append(report.Results, skipped("shapiro-wilk",
			"residuals are normally distributed",
			"sample size outside [3, 5000] or zero variance"))
	}

	if bp := stats.BreuschPagan(residuals, fitted); bp != nil {
		report.Results = append(report.Results, decide(Result{
			Name:      "breusch-pagan",
			Null:      "residual variance is constant",
			Statistic: bp.Statistic,
			PValue:    bp.PValue,
		}, alpha))
	} else {
		report.Results = append(report.Results, skipped("breusch-pagan",
			"residual variance is constant",
			"too few observations or no fitted values"))
	}

	return report, nil
}

func decide(r Result, alpha float64) Result {
	if r.PValue < alpha {
		r.Decision = Reject
	} else {
		r.Decision = FailToReject
	}
	return r
}

func skipped(name, null, detail string) Result {
	return Result{Name: name, Null: null, Decision: Skipped, Detail: detail}
}
