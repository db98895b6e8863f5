package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// olsFit holds the result of an ordinary least squares regression.
type olsFit struct {
	Coeffs    []float64
	StdErrors []float64
	Residuals []float64
	RSquared  float64
}

// ols regresses y on the rows of x. Each row of x is one observation,
// including any constant column the caller provides. Solved by QR.
func ols(x [][]float64, y []float64) (*olsFit, error) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, errors.New("design matrix and response must have the same length")
	}
	k := len(x[0])
	if k == 0 {
		return nil, errors.New("design matrix has no regressors")
	}
	if n <= k {
		return nil, errors.New("not enough observations for regression")
	}

	X := mat.NewDense(n, k, nil)
	for i, row := range x {
		if len(row) != k {
			return nil, errors.New("ragged design matrix")
		}
		X.SetRow(i, row)
	}
	yVec := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(X)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yVec); err != nil {
		return nil, errors.New("singular design matrix")
	}

	coeffs := make([]float64, k)
	for i := range coeffs {
		coeffs[i] = beta.AtVec(i)
	}

	residuals := make([]float64, n)
	sse := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coeffs[j] * x[i][j]
		}
		residuals[i] = y[i] - pred
		sse += residuals[i] * residuals[i]
	}

	yMean := stat.Mean(y, nil)
	tss := 0.0
	for _, v := range y {
		d := v - yMean
		tss += d * d
	}
	rSquared := 0.0
	if tss > 0 {
		rSquared = 1 - sse/tss
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(X.T(), X)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.New("singular design matrix")
	}

	s2 := sse / float64(n-k)
	stdErrors := make([]float64, k)
	for i := 0; i < k; i++ {
		stdErrors[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}

	return &olsFit{
		Coeffs:    coeffs,
		StdErrors: stdErrors,
		Residuals: residuals,
		RSquared:  rSquared,
	}, nil
}
