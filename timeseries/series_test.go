package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNewAnnual(t *testing.T) {
	series := NewAnnual(1960, []float64{1, 2, 3})

	if series.Len() != 3 {
		t.Fatalf("expected length 3, got %d", series.Len())
	}

	years := series.Years()
	for i, want := range []int{1960, 1961, 1962} {
		if years[i] != want {
			t.Errorf("year[%d] = %d, want %d", i, years[i], want)
		}
	}
}

func TestNewWithTimestampsOrdering(t *testing.T) {
	y2000 := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	y2001 := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

	if _, err := NewWithTimestamps([]time.Time{y2000, y2001}, []float64{1, 2}); err != nil {
		t.Errorf("strictly increasing timestamps rejected: %v", err)
	}

	if _, err := NewWithTimestamps([]time.Time{y2001, y2000}, []float64{1, 2}); err == nil {
		t.Error("decreasing timestamps accepted")
	}

	if _, err := NewWithTimestamps([]time.Time{y2000, y2000}, []float64{1, 2}); err == nil {
		t.Error("duplicate timestamps accepted")
	}

	if _, err := NewWithTimestamps([]time.Time{y2000}, []float64{1, 2}); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestMoments(t *testing.T) {
	series := New([]float64{2, 4, 6, 8})

	if math.Abs(series.Mean()-5) > 1e-12 {
		t.Errorf("Mean = %f, want 5", series.Mean())
	}
	// Sample variance of {2,4,6,8} is 20/3.
	if math.Abs(series.Variance()-20.0/3.0) > 1e-12 {
		t.Errorf("Variance = %f, want %f", series.Variance(), 20.0/3.0)
	}
	if math.Abs(series.Std()-math.Sqrt(20.0/3.0)) > 1e-12 {
		t.Errorf("Std = %f, want %f", series.Std(), math.Sqrt(20.0/3.0))
	}
	if series.Min() != 2 || series.Max() != 8 {
		t.Errorf("Min/Max = %f/%f, want 2/8", series.Min(), series.Max())
	}
}

func TestDiff(t *testing.T) {
	series := New([]float64{1, 4, 9, 16, 25})
	diffed := series.Diff()

	want := []float64{3, 5, 7, 9}
	if diffed.Len() != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), diffed.Len())
	}
	for i, w := range want {
		if diffed.Values[i] != w {
			t.Errorf("Diff[%d] = %f, want %f", i, diffed.Values[i], w)
		}
	}
}

func TestDiffNRemovesQuadraticTrend(t *testing.T) {
	// Second difference of a quadratic is constant.
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i * i)
	}
	diffed := New(values).DiffN(2)

	if diffed.Len() != 18 {
		t.Fatalf("expected length 18, got %d", diffed.Len())
	}
	for i, v := range diffed.Values {
		if v != 2 {
			t.Errorf("DiffN(2)[%d] = %f, want 2", i, v)
		}
	}
}

func TestDiffShortSeries(t *testing.T) {
	if got := New([]float64{5}).Diff().Len(); got != 0 {
		t.Errorf("Diff of length-1 series has length %d, want 0", got)
	}
	if got := New([]float64{1, 2, 3}).DiffN(5).Len(); got != 0 {
		t.Errorf("over-differencing left length %d, want 0", got)
	}
}

func TestIntegrateRoundTrip(t *testing.T) {
	values := []float64{100, 104, 112, 125, 140, 161, 185, 214, 250, 291}
	series := New(values)

	for order := 0; order <= 2; order++ {
		diffed := series.DiffN(order)
		restored := Integrate(diffed, values[:order])

		if restored.Len() != len(values) {
			t.Fatalf("order %d: restored length %d, want %d", order, restored.Len(), len(values))
		}
		for i, v := range values {
			if math.Abs(restored.Values[i]-v) > 1e-9 {
				t.Errorf("order %d: restored[%d] = %f, want %f", order, i, restored.Values[i], v)
			}
		}
	}
}

func TestSliceAndCopy(t *testing.T) {
	series := NewAnnual(1960, []float64{1, 2, 3, 4, 5})

	sub := series.Slice(1, 3)
	if sub.Len() != 2 || sub.Values[0] != 2 || sub.Values[1] != 3 {
		t.Errorf("Slice(1,3) = %v", sub.Values)
	}
	if sub.Timestamps[0].Year() != 1961 {
		t.Errorf("Slice timestamp year = %d, want 1961", sub.Timestamps[0].Year())
	}

	cp := series.Copy()
	cp.Values[0] = 99
	if series.Values[0] != 1 {
		t.Error("Copy shares backing storage with the original")
	}

	if series.Slice(3, 1).Len() != 0 {
		t.Error("inverted Slice bounds should yield an empty series")
	}
}
