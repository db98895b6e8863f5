package diagnostics

import (
	"golang.org/x/exp/rand"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/arima"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

func gaussianNoise(n int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	values := make([]float64, n)
	for i := range values {
		values[i] = dist.Rand()
	}
	return values
}

func TestBatteryOnFittedModel(t *testing.T) {
	model := arima.New(0, 0, 0)
	if err := model.Fit(timeseries.New(gaussianNoise(150, 1))); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	report, err := NewBattery().Run(model)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.Results) != 3 {
		t.Fatalf("result count = %d, want 3", len(report.Results))
	}
	for _, name := range []string{"ljung-box", "shapiro-wilk", "breusch-pagan"} {
		res := report.Lookup(name)
		if res == nil {
			t.Fatalf("missing %s result", name)
		}
		if res.Decision == Skipped {
			t.Errorf("%s skipped: %s", name, res.Detail)
			continue
		}
		if res.PValue < 0 || res.PValue > 1 {
			t.Errorf("%s p-value out of range: %f", name, res.PValue)
		}
		if res.Null == "" {
			t.Errorf("%s has no null hypothesis text", name)
		}
	}
	t.Logf("clean=%v", report.Clean())
}

func TestBatteryRejectsAutocorrelatedResiduals(t *testing.T) {
	// Strongly autocorrelated "residuals" must trip Ljung-Box.
	n := 200
	noise := gaussianNoise(n, 2)
	residuals := make([]float64, n)
	for i := 1; i < n; i++ {
		residuals[i] = 0.8*residuals[i-1] + noise[i]
	}
	fitted := make([]float64, n)

	report, err := NewBattery().RunOn(residuals, fitted, 0)
	if err != nil {
		t.Fatalf("RunOn failed: %v", err)
	}

	lb := report.Lookup("ljung-box")
	if lb == nil || lb.Decision != Reject {
		t.Errorf("Ljung-Box did not reject on AR(1) residuals: %+v", lb)
	}
	if report.Clean() {
		t.Error("report marked clean despite a rejection")
	}
}

func TestBatteryIndependence(t *testing.T) {
	// Two residuals: Ljung-Box and Breusch-Pagan cannot run, Shapiro-Wilk
	// cannot either. All three must appear as skipped, not vanish.
	report, err := NewBattery().RunOn([]float64{0.1, -0.1}, []float64{1, 2}, 0)
	if err != nil {
		t.Fatalf("RunOn failed: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("result count = %d, want 3", len(report.Results))
	}
	for _, res := range report.Results {
		if res.Decision != Skipped {
			t.Errorf("%s should be skipped on 2 observations, got %q", res.Name, res.Decision)
		}
		if res.Detail == "" {
			t.Errorf("%s skipped without a reason", res.Name)
		}
	}
	if !report.Clean() {
		t.Error("skipped tests should not make the report dirty")
	}
}

func TestBatteryCustomAlpha(t *testing.T) {
	residuals := gaussianNoise(100, 3)
	fitted := make([]float64, 100)

	strict := &Battery{Alpha: 0.99, LjungLag: 5}
	report, err := strict.RunOn(residuals, fitted, 0)
	if err != nil {
		t.Fatalf("RunOn failed: %v", err)
	}
	if report.Alpha != 0.99 {
		t.Errorf("alpha = %f, want 0.99", report.Alpha)
	}
	// At alpha 0.99 almost any p-value rejects.
	lb := report.Lookup("ljung-box")
	if lb != nil && lb.Decision != Skipped && lb.PValue < 0.99 && lb.Decision != Reject {
		t.Errorf("p=%f below alpha but decision %q", lb.PValue, lb.Decision)
	}
}

func TestBatteryValidation(t *testing.T) {
	if _, err := NewBattery().Run(arima.New(1, 0, 0)); err == nil {
		t.Error("expected error for an unfitted model")
	}
	if _, err := NewBattery().RunOn(nil, nil, 0); err == nil {
		t.Error("expected error for empty residuals")
	}

	// Invalid settings fall back to defaults instead of failing.
	loose := &Battery{Alpha: -1, LjungLag: -5}
	report, err := loose.RunOn(gaussianNoise(100, 4), make([]float64, 100), 0)
	if err != nil {
		t.Fatalf("RunOn failed: %v", err)
	}
	if math.Abs(report.Alpha-0.05) > 1e-12 {
		t.Errorf("alpha fallback = %f, want 0.05", report.Alpha)
	}
}
