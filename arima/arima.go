// Package arima implements ARIMA (AutoRegressive Integrated Moving Average) models.
package arima

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/stats"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// Order represents ARIMA model order (p, d, q).
type Order struct {
	P int // AR order (number of autoregressive terms)
	D int // Differencing order
	Q int // MA order (number of moving average terms)
}

// String formats the order as ARIMA(p,d,q).
func (o Order) String() string {
	return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
}

// NumParams returns the number of estimated parameters (AR + MA + intercept).
func (o Order) NumParams() int {
	return o.P + o.Q + 1
}

// ConvergenceError reports that coefficient estimation did not converge
// within the optimizer's iteration budget. Callers may retry with a
// different order; partial coefficients are never returned.
type ConvergenceError struct {
	Order  Order
	Status string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s estimation did not converge (%s)", e.Order, e.Status)
}

// Model represents an ARIMA model.
type Model struct {
	Order     Order
	ARCoeffs  []float64 // AR coefficients (phi)
	MACoeffs  []float64 // MA coefficients (theta)
	Intercept float64
	Variance  float64 // Residual variance
	AIC       float64
	AICc      float64 // Corrected AIC for small sample sizes
	BIC       float64
	LogLik    float64

	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// New creates a new ARIMA model with the specified order.
func New(p, d, q int) *Model {
	return &Model{
		Order:    Order{P: p, D: d, Q: q},
		ARCoeffs: make([]float64, p),
		MACoeffs: make([]float64, q),
	}
}

// Fit estimates the model coefficients on the given series by conditional
// sum of squares. The series is differenced Order.D times internally.
// Returns *ConvergenceError when the optimizer fails to converge.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.Order.P < 0 || m.Order.D < 0 || m.Order.Q < 0 {
		return errors.New("model orders must be non-negative")
	}
	if series.Len() < m.Order.P+m.Order.Q+m.Order.D+10 {
		return errors.New("insufficient data points for the specified order")
	}

	m.data = series

	diffSeries := series.DiffN(m.Order.D)
	if diffSeries.Len() == 0 {
		return errors.New("differencing resulted in empty series")
	}
	m.diffData = diffSeries

	if err := m.estimate(); err != nil {
		return err
	}

	m.computeResiduals()
	m.calculateIC()

	m.fitted = true
	return nil
}

// estimate finds AR and MA coefficients minimizing the conditional sum of
// squares. The intercept is held at the differenced-series mean.
func (m *Model) estimate() error {
	y := m.diffData.Values
	p := m.Order.P
	q := m.Order.Q

	m.Intercept = m.diffData.Mean()

	if p == 0 && q == 0 {
		return nil
	}

	// Starting point: Yule-Walker for the AR part, small values for MA.
	initial := make([]float64, p+q)
	if p > 0 {
		acf := stats.ACF(m.diffData, p)
		if phi := yuleWalker(acf, p); phi != nil {
			copy(initial, phi)
		}
	}
	for i := p; i < p+q; i++ {
		initial[i] = 0.1
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			return m.css(y, params[:p], params[p:])
		},
	}

	settings := &optimize.Settings{
		MajorIterations: 2000,
	}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if err != nil || !converged(result.Status) {
		// Quasi-Newton fallback with a finite-difference gradient.
		result, err = optimize.Minimize(problem, initial, settings, &optimize.BFGS{})
	}
	if err != nil {
		return &ConvergenceError{Order: m.Order, Status: err.Error()}
	}
	if !converged(result.Status) {
		return &ConvergenceError{Order: m.Order, Status: result.Status.String()}
	}

	copy(m.ARCoeffs, result.X[:p])
	copy(m.MACoeffs, result.X[p:])
	return nil
}

// converged reports whether an optimizer status counts as success.
func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success, optimize.FunctionConvergence, optimize.GradientThreshold, optimize.StepConvergence:
		return true
	}
	return false
}

// css computes the conditional sum of squares for candidate coefficients.
// Coefficients outside the stationarity/invertibility region are penalized
// so the optimizer stays inside it.
func (m *Model) css(y, ar, ma []float64) float64 {
	const bound = 0.995
	penalty := 0.0
	for _, c := range ar {
		if math.Abs(c) > bound {
			penalty += math.Abs(c) - bound
		}
	}
	for _, c := range ma {
		if math.Abs(c) > bound {
			penalty += math.Abs(c) - bound
		}
	}
	if penalty > 0 {
		return 1e12 * (1 + penalty)
	}

	n := len(y)
	p := len(ar)
	q := len(ma)
	startIdx := maxInt(p, q)

	residuals := make([]float64, n)
	sse := 0.0
	for t := startIdx; t < n; t++ {
		pred := m.Intercept
		for i := 0; i < p; i++ {
			pred += ar[i] * (y[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0; i++ {
			pred += ma[i] * residuals[t-i-1]
		}
		residuals[t] = y[t] - pred
		sse += residuals[t] * residuals[t]
	}
	return sse
}

// computeResiduals fills residuals, fitted values and the residual variance
// from the final coefficients.
func (m *Model) computeResiduals() {
	y := m.diffData.Values
	n := len(y)
	p := m.Order.P
	q := m.Order.Q
	startIdx := maxInt(p, q)

	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)

	for t := 0; t < n; t++ {
		if t < startIdx {
			m.fittedVals[t] = m.Intercept
			m.residuals[t] = y[t] - m.Intercept
			continue
		}

		pred := m.Intercept
		for i := 0; i < p; i++ {
			pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
		}
		for i := 0; i < q && t-i-1 >= 0; i++ {
			pred += m.MACoeffs[i] * m.residuals[t-i-1]
		}

		m.fittedVals[t] = pred
		m.residuals[t] = y[t] - pred
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > p+q+1 {
		m.Variance = sse / float64(count-p-q-1)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}
}

// calculateIC calculates AIC, AICc, BIC and the Gaussian log-likelihood.
func (m *Model) calculateIC() {
	n := len(m.residuals)
	k := m.Order.NumParams()

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	ic := stats.CalculateIC(m.LogLik, n, k)
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC
}

// Predict generates forecasts for the specified number of steps ahead,
// integrated back to the original scale.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}

	p := m.Order.P
	q := m.Order.Q

	y := m.diffData.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)

	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Intercept

		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		// Future residuals have expectation zero.
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResiduals[t-i-1]
		}

		extY[t] = pred
		extResiduals[t] = 0
	}

	forecasts := extY[n:]
	if m.Order.D > 0 {
		forecasts = m.integrate(forecasts)
	}
	return forecasts, nil
}

// integrate undoes differencing to return forecasts on the original scale.
// The cumulative sum at depth i must be seeded with the last value of the
// i-times differenced data, not the last i raw levels.
func (m *Model) integrate(forecasts []float64) []float64 {
	d := m.Order.D

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	for i := d - 1; i >= 0; i-- {
		diffed := m.data.DiffN(i)
		last := diffed.Values[diffed.Len()-1]
		for j := range result {
			if j == 0 {
				result[j] += last
			} else {
				result[j] += result[j-1]
			}
		}
	}
	return result
}

// Residuals returns a copy of the model residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns a copy of the in-sample fitted values on the
// differenced scale.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Fitted reports whether the model has been successfully estimated.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Summary holds a fitted model's coefficients and quality measures.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box
// check of the residuals at lag 10.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	residSeries := timeseries.New(m.residuals)
	lb := stats.LjungBox(residSeries, 10, m.Order.P+m.Order.Q)

	return &Summary{
		Order:     m.Order,
		ARCoeffs:  m.ARCoeffs,
		MACoeffs:  m.MACoeffs,
		Intercept: m.Intercept,
		Variance:  m.Variance,
		AIC:       m.AIC,
		AICc:      m.AICc,
		BIC:       m.BIC,
		LogLik:    m.LogLik,
		NObs:      m.data.Len(),
		LjungBox:  lb,
	}
}

// yuleWalker estimates AR coefficients from the ACF using Levinson-Durbin
// recursion.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		if v <= 0 {
			break
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= 1 - lambda*lambda
	}

	return phi
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
