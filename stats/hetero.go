package stats

// BreuschPaganResult represents the result of a Breusch-Pagan test.
type BreuschPaganResult struct {
	Statistic float64 // Lagrange multiplier statistic (n * R²)
	PValue    float64
	DOF       int
}

// BreuschPagan performs the Breusch-Pagan test for heteroscedasticity by
// regressing the squared residuals on the fitted values. The null
// hypothesis is constant variance. Uses the studentized (Koenker) LM form
// n*R², which is chi-squared with one degree of freedom under the null.
func BreuschPagan(residuals, fitted []float64) *BreuschPaganResult {
	n := len(residuals)
	if n < 10 || len(fitted) != n {
		return nil
	}

	y := make([]float64, n)
	x := make([][]float64, n)
	for i := 0; i < n; i++ {
		y[i] = residuals[i] * residuals[i]
		x[i] = []float64{1, fitted[i]}
	}

	fit, err := ols(x, y)
	if err != nil {
		return nil
	}

	lm := float64(n) * fit.RSquared
	dof := 1

	return &BreuschPaganResult{
		Statistic: lm,
		PValue:    chiSquaredSurvival(lm, dof),
		DOF:       dof,
	}
}
