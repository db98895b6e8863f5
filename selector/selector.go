// Package selector implements ARIMA order identification.
package selector

import (
	"errors"
	"math"
	"sort"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/arima"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/stats"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
)

// Candidate is an order considered during selection, with the criteria
// observed for it. AIC and BIC are NaN for candidates proposed without a
// fit (the correlogram heuristic) and for candidates whose fit failed.
type Candidate struct {
	Order  arima.Order
	AIC    float64
	BIC    float64
	LogLik float64
	Err    error // non-nil when the candidate could not be fitted
}

// Strategy proposes an ARIMA order given the already-differenced series
// and the differencing order d that produced it; d is carried into every
// proposed order. The returned candidates record everything the strategy
// considered, in the order it considered them.
type Strategy interface {
	Propose(series *timeseries.Series, d int) (arima.Order, []Candidate, error)
}

// Heuristic identifies the order from the correlogram of the differenced
// series: a PACF that cuts off at lag k with a tailing-off ACF suggests
// AR(k); an ACF that cuts off at lag k with a tailing-off PACF suggests
// MA(k). When both cut off, both pure candidates are proposed and the one
// with fewer parameters wins; when neither does, the fallback order is
// used.
type Heuristic struct {
	MaxLag   int         // correlogram length (default: 10)
	Fallback arima.Order // used when the correlogram is uninformative
}

// NewHeuristic returns a Heuristic with an ARIMA(1,d,1) fallback.
func NewHeuristic() *Heuristic {
	return &Heuristic{MaxLag: 10, Fallback: arima.Order{P: 1, Q: 1}}
}

// Propose implements Strategy using the cutoff-versus-tail-off rule.
func (h *Heuristic) Propose(series *timeseries.Series, d int) (arima.Order, []Candidate, error) {
	maxLag := h.MaxLag
	if maxLag <= 0 {
		maxLag = 10
	}
	if series.Len() <= maxLag+1 {
		maxLag = series.Len() / 2
	}

	acf := stats.ACFWithConfidence(series, maxLag)
	pacf := stats.PACFWithConfidence(series, maxLag)
	if acf == nil || pacf == nil {
		return arima.Order{}, nil, errors.New("series too short or degenerate for correlogram analysis")
	}

	acfCut := stats.CutoffLag(acf.Values, acf.ConfBounds)
	pacfCut := stats.CutoffLag(pacf.Values, pacf.ConfBounds)

	var candidates []Candidate
	if pacfCut > 0 {
		candidates = append(candidates, newCandidate(arima.Order{P: pacfCut, D: d}))
	}
	if acfCut > 0 {
		candidates = append(candidates, newCandidate(arima.Order{D: d, Q: acfCut}))
	}

	switch {
	case pacfCut > 0 && acfCut > 0:
		// Both cut off: prefer the shorter memory.
		if acfCut < pacfCut {
			return arima.Order{D: d, Q: acfCut}, candidates, nil
		}
		return arima.Order{P: pacfCut, D: d}, candidates, nil
	case pacfCut > 0:
		return arima.Order{P: pacfCut, D: d}, candidates, nil
	case acfCut > 0:
		return arima.Order{D: d, Q: acfCut}, candidates, nil
	case pacfCut == 0 && acfCut == 0:
		// Nothing significant: the differenced series looks like noise.
		order := arima.Order{D: d}
		return order, []Candidate{newCandidate(order)}, nil
	}

	// Both tail off; the correlogram alone cannot pick an order.
	order := h.Fallback
	order.D = d
	return order, append(candidates, newCandidate(order)), nil
}

func newCandidate(order arima.Order) Candidate {
	return Candidate{
		Order:  order,
		AIC:    math.NaN(),
		BIC:    math.NaN(),
		LogLik: math.NaN(),
	}
}

// AICSearch selects the order by fitting every (p,q) combination on a grid
// and keeping the one with the lowest criterion. Ties go to the model with
// fewer parameters, then to the smaller AR order.
type AICSearch struct {
	MaxP      int    // maximum AR order (default: 3)
	MaxQ      int    // maximum MA order (default: 3)
	Criterion string // "aic" (default) or "bic"
}

// NewAICSearch returns an AICSearch over the default 4x4 grid.
func NewAICSearch() *AICSearch {
	return &AICSearch{MaxP: 3, MaxQ: 3, Criterion: "aic"}
}

// Propose implements Strategy by exhaustive grid search. Candidates that
// fail to fit are recorded with their error and skipped; an error is
// returned only when no candidate fits at all.
func (s *AICSearch) Propose(series *timeseries.Series, d int) (arima.Order, []Candidate, error) {
	maxP := s.MaxP
	maxQ := s.MaxQ
	if maxP < 0 {
		maxP = 3
	}
	if maxQ < 0 {
		maxQ = 3
	}

	var orders []arima.Order
	for p := 0; p <= maxP; p++ {
		for q := 0; q <= maxQ; q++ {
			orders = append(orders, arima.Order{P: p, D: d, Q: q})
		}
	}
	// Evaluate parsimonious orders first so exact criterion ties keep the
	// smaller model.
	sort.Slice(orders, func(i, j int) bool {
		pi, pj := orders[i].P+orders[i].Q, orders[j].P+orders[j].Q
		if pi != pj {
			return pi < pj
		}
		if orders[i].P != orders[j].P {
			return orders[i].P < orders[j].P
		}
		return orders[i].Q < orders[j].Q
	})

	const tol = 1e-9

	candidates := make([]Candidate, 0, len(orders))
	best := -1
	bestCriterion := math.Inf(1)

	for _, order := range orders {
		// The series is already differenced; fit the ARMA part only and
		// carry d in the reported order.
		model := arima.New(order.P, 0, order.Q)
		if err := model.Fit(series); err != nil {
			candidates = append(candidates, Candidate{
				Order:  order,
				AIC:    math.NaN(),
				BIC:    math.NaN(),
				LogLik: math.NaN(),
				Err:    err,
			})
			continue
		}

		candidates = append(candidates, Candidate{
			Order:  order,
			AIC:    model.AIC,
			BIC:    model.BIC,
			LogLik: model.LogLik,
		})

		criterion := model.AIC
		if s.Criterion == "bic" {
			criterion = model.BIC
		}
		if !math.IsNaN(criterion) && criterion < bestCriterion-tol {
			bestCriterion = criterion
			best = len(candidates) - 1
		}
	}

	if best < 0 {
		return arima.Order{}, candidates, errors.New("no candidate order could be fitted")
	}
	return candidates[best].Order, candidates, nil
}
