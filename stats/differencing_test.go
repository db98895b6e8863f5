package stats

import (
	"testing"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

func TestStationarizeAlreadyStationary(t *testing.T) {
	series := timeseries.New(gaussianNoise(100, 17))
	result := Stationarize(series, 0.05, 2)

	if !result.Stationary {
		t.Fatalf("white noise should be stationary without differencing, steps=%+v", result.Steps)
	}
	if result.Order != 0 {
		t.Errorf("order = %d, want 0", result.Order)
	}
	if result.Series.Len() != series.Len() {
		t.Errorf("series length changed: %d", result.Series.Len())
	}
	if len(result.Steps) != 1 || !result.Steps[0].Rejected {
		t.Errorf("unexpected step trace: %+v", result.Steps)
	}
}

func TestStationarizeLinearTrend(t *testing.T) {
	// Linear trend plus small noise: one difference suffices.
	noise := gaussianNoise(120, 23)
	values := make([]float64, len(noise))
	for i := range values {
		values[i] = 50 + 2*float64(i) + noise[i]
	}

	result := Stationarize(timeseries.New(values), 0.05, 2)

	if !result.Stationary {
		t.Fatalf("trend series should become stationary within 2 passes, steps=%+v", result.Steps)
	}
	if result.Order > 2 {
		t.Errorf("order = %d, want <= 2", result.Order)
	}
	if result.Series.Len() != len(values)-result.Order {
		t.Errorf("differenced length = %d, want %d", result.Series.Len(), len(values)-result.Order)
	}
	for _, step := range result.Steps {
		if step.PValue < 0 || step.PValue > 1 {
			t.Errorf("step p-value out of range: %+v", step)
		}
	}
	t.Logf("linear trend: order=%d steps=%+v", result.Order, result.Steps)
}

func TestStationarizeQuadraticTrend(t *testing.T) {
	// Quadratic trend: requires up to two differences.
	noise := gaussianNoise(120, 31)
	values := make([]float64, len(noise))
	for i := range values {
		x := float64(i)
		values[i] = 100 + 0.5*x*x + noise[i]
	}

	result := Stationarize(timeseries.New(values), 0.05, 2)

	if !result.Stationary {
		t.Fatalf("quadratic trend should become stationary within 2 passes, steps=%+v", result.Steps)
	}
	if result.Order > 2 {
		t.Errorf("order = %d, want <= 2", result.Order)
	}
	t.Logf("quadratic trend: order=%d", result.Order)
}

func TestStationarizeCapReached(t *testing.T) {
	// With a zero cap a trending series cannot be made stationary; the
	// result is annotated rather than failing.
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) * 3
	}

	result := Stationarize(timeseries.New(values), 0.05, 0)

	if result.Stationary {
		t.Error("trend at cap 0 should not be stationary")
	}
	if result.Order != 0 {
		t.Errorf("order = %d, want 0", result.Order)
	}
	if len(result.Steps) != 1 {
		t.Errorf("expected a single step, got %d", len(result.Steps))
	}
	if result.Series.Len() != 100 {
		t.Errorf("series should be returned undifferenced at cap 0")
	}
}

func TestStationarizeDefaults(t *testing.T) {
	series := timeseries.New(gaussianNoise(100, 41))

	// Out-of-range alpha and negative cap fall back to 0.05 and 2.
	result := Stationarize(series, -1, -1)
	if result == nil || len(result.Steps) == 0 {
		t.Fatal("Stationarize with defaults returned no steps")
	}
}

func TestNDiffs(t *testing.T) {
	noise := gaussianNoise(120, 53)

	stationary := timeseries.New(noise)
	if d := NDiffs(stationary, 2, "adf"); d != 0 {
		t.Errorf("white noise NDiffs = %d, want 0", d)
	}

	walk := make([]float64, len(noise))
	walk[0] = noise[0]
	for i := 1; i < len(noise); i++ {
		walk[i] = walk[i-1] + noise[i]
	}
	d := NDiffs(timeseries.New(walk), 2, "adf")
	t.Logf("random walk NDiffs(adf) = %d", d)
	if d < 1 {
		t.Logf("random walk classified stationary without differencing")
	}

	dk := NDiffs(timeseries.New(walk), 2, "kpss")
	t.Logf("random walk NDiffs(kpss) = %d", dk)
	if dk > 2 {
		t.Errorf("NDiffs exceeded cap: %d", dk)
	}
}
