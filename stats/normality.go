package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ShapiroWilkResult represents the result of a Shapiro-Wilk normality test.
type ShapiroWilkResult struct {
	Statistic float64 // W statistic in (0, 1]
	PValue    float64
	N         int
}

// ShapiroWilk performs the Shapiro-Wilk test for normality using Royston's
// AS R94 approximation. The null hypothesis is that the sample is drawn
// from a normal distribution. Valid for sample sizes from 3 to 5000;
// returns nil outside that range or for a constant sample.
func ShapiroWilk(data []float64) *ShapiroWilkResult {
	n := len(data)
	if n < 3 || n > 5000 {
		return nil
	}

	x := make([]float64, n)
	copy(x, data)
	sort.Float64s(x)

	if x[n-1] == x[0] {
		return nil
	}

	// Blom scores: expected normal order statistics.
	norm := distuv.UnitNormal
	m := make([]float64, n)
	ssm := 0.0
	for i := 0; i < n; i++ {
		m[i] = norm.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
	} else {
		u := 1 / math.Sqrt(float64(n))
		rsn := 1 / math.Sqrt(ssm)

		// Royston's polynomial corrections for the extreme weights.
		an := -2.706056*pow5(u) + 4.434685*pow4(u) - 2.071190*pow3(u) -
			0.147981*u*u + 0.221157*u + rsn*m[n-1]

		if n > 5 {
			an1 := -3.582633*pow5(u) + 5.682633*pow4(u) - 1.752461*pow3(u) -
				0.293762*u*u + 0.042981*u + rsn*m[n-2]
			phi := (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
				(1 - 2*an*an - 2*an1*an1)
			sqrtPhi := math.Sqrt(phi)

			a[n-1], a[0] = an, -an
			a[n-2], a[1] = an1, -an1
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / sqrtPhi
			}
		} else {
			phi := (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			sqrtPhi := math.Sqrt(phi)

			a[n-1], a[0] = an, -an
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / sqrtPhi
			}
		}
	}

	mean := stat.Mean(x, nil)
	num := 0.0
	den := 0.0
	for i := 0; i < n; i++ {
		num += a[i] * x[i]
		den += (x[i] - mean) * (x[i] - mean)
	}
	w := num * num / den
	if w > 1 {
		w = 1
	}

	return &ShapiroWilkResult{
		Statistic: w,
		PValue:    shapiroWilkPValue(w, n),
		N:         n,
	}
}

// shapiroWilkPValue maps the W statistic to a p-value via Royston's
// normalizing transformations.
func shapiroWilkPValue(w float64, n int) float64 {
	norm := distuv.UnitNormal

	switch {
	case n == 3:
		// Exact for n = 3.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return clamp01(p)

	case n <= 11:
		nf := float64(n)
		g := -2.273 + 0.459*nf
		mu := 0.5440 - 0.39978*nf + 0.025054*nf*nf - 0.0006714*pow3(nf)
		sigma := math.Exp(1.3822 - 0.77857*nf + 0.062767*nf*nf - 0.0020322*pow3(nf))
		y := -math.Log(g - math.Log(1-w))
		return clamp01(norm.Survival((y - mu) / sigma))

	default:
		ln := math.Log(float64(n))
		mu := 0.0038915*pow3(ln) - 0.083751*ln*ln - 0.31082*ln - 1.5861
		sigma := math.Exp(0.0030302*ln*ln - 0.082676*ln - 0.4803)
		y := math.Log(1 - w)
		return clamp01(norm.Survival((y - mu) / sigma))
	}
}

// JarqueBeraResult represents the result of a Jarque-Bera normality test.
type JarqueBeraResult struct {
	Statistic float64
	PValue    float64
	Skewness  float64
	Kurtosis  float64 // excess kurtosis
}

// JarqueBera performs the Jarque-Bera test for normality based on sample
// skewness and excess kurtosis. The null hypothesis is normality.
func JarqueBera(data []float64) *JarqueBeraResult {
	n := len(data)
	if n < 10 {
		return nil
	}

	skew := stat.Skew(data, nil)
	exKurt := stat.ExKurtosis(data, nil)

	jb := float64(n) / 6 * (skew*skew + exKurt*exKurt/4)

	return &JarqueBeraResult{
		Statistic: jb,
		PValue:    chiSquaredSurvival(jb, 2),
		Skewness:  skew,
		Kurtosis:  exKurt,
	}
}

func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return x * x * x * x }
func pow5(x float64) float64 { return x * x * x * x * x }

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
