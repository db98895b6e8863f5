// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Series represents a time series with timestamps and values.
// Timestamps are strictly increasing; transforms return new Series and
// leave the receiver untouched.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values with synthetic hourly timestamps.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewAnnual creates a time series of annual observations starting at startYear.
func NewAnnual(startYear int, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = time.Date(startYear+i, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
// Timestamps must be strictly increasing.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, errors.New("timestamps must be strictly increasing")
		}
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Years returns the calendar year of each observation.
func (s *Series) Years() []int {
	years := make([]int, len(s.Timestamps))
	for i, ts := range s.Timestamps {
		years[i] = ts.Year()
	}
	return years
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.StdDev(s.Values, nil)
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	return s.diffOnce()
}

// DiffN applies first differencing n times. The result is n observations
// shorter than the receiver.
func (s *Series) DiffN(n int) *Series {
	current := s
	for i := 0; i < n; i++ {
		current = current.diffOnce()
	}
	return current
}

func (s *Series) diffOnce() *Series {
	if len(s.Values) <= 1 {
		return &Series{Values: []float64{}, Name: s.Name + "_diff"}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) == len(s.Values) {
		copy(timestamps, s.Timestamps[1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_diff",
	}
}

// Integrate reverses repeated first differencing. head must hold the leading
// observations dropped by the differencing passes, one per pass, so that
// Integrate(s.DiffN(k), s.Values[:k]) reconstructs s exactly.
func Integrate(diffed *Series, head []float64) *Series {
	order := len(head)
	if order == 0 {
		return diffed.Copy()
	}

	// Leading value of each intermediate difference level, derived from the
	// dropped original observations.
	heads := make([]float64, order)
	tmp := make([]float64, order)
	copy(tmp, head)
	for k := 0; k < order; k++ {
		heads[k] = tmp[0]
		for i := 0; i+1 < len(tmp); i++ {
			tmp[i] = tmp[i+1] - tmp[i]
		}
		tmp = tmp[:len(tmp)-1]
	}

	values := make([]float64, len(diffed.Values))
	copy(values, diffed.Values)
	for k := order - 1; k >= 0; k-- {
		integrated := make([]float64, len(values)+1)
		integrated[0] = heads[k]
		for i, v := range values {
			integrated[i+1] = integrated[i] + v
		}
		values = integrated
	}

	return &Series{
		Timestamps: make([]time.Time, len(values)),
		Values:     values,
		Name:       diffed.Name + "_integrated",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
