// Package surprise computes the Surprise statistic of a graph partition:
// S = -log10(P(X >= p)) where X ~ Hypergeometric(F, M, n).
//
// The whole computation stays in log10 space so that factorial-scale
// combinatorics never overflow. The package knows nothing about graphs; it
// consumes the four sufficient statistics and nothing else.
package surprise

import (
	"fmt"

	"github.com/dd0wney/cluso-surprise/pkg/validation"
)

// Stats are the sufficient statistics of a graph/partition pair.
type Stats struct {
	F int64 `json:"F" validate:"gte=0"`            // Node pairs in the network: N(N-1)/2
	M int64 `json:"M" validate:"gte=0,ltefield=F"` // Intra-community pairs: sum s_i(s_i-1)/2
	N int64 `json:"n" validate:"gte=0,ltefield=F"` // Edges in the network
	P int64 `json:"p" validate:"gte=0,ltefield=N"` // Intra-community edges
}

// String renders the statistics the way they are usually quoted.
func (s Stats) String() string {
	return fmt.Sprintf("F=%d M=%d n=%d p=%d", s.F, s.M, s.N, s.P)
}

// Minimum is the upper end of the tail sum, min(n, M).
func (s Stats) Minimum() int64 {
	return min(s.N, s.M)
}

// Validate checks the statistics describe a point inside the hypergeometric
// support. It returns a *PreconditionError on the first violation.
func (s Stats) Validate() error {
	const op = "Validate"

	if err := validation.Struct(s); err != nil {
		violations := validation.Violations(err)
		if len(violations) == 0 {
			return fmt.Errorf("%s: %w", op, err)
		}
		v := violations[0]
		value, _ := v.Value.(int64)
		return violation(op, v.Field, value, "%s", v.Describe())
	}

	if s.P > s.M {
		return violation(op, "P", s.P, "<= M = %d", s.M)
	}
	// Fewer intra-community edges than this would force more inter-community
	// edges than there are inter-community pairs.
	if lower := s.N - (s.F - s.M); s.P < lower {
		return violation(op, "P", s.P, ">= n-(F-M) = %d", lower)
	}
	return nil
}

// State is the tail-summation state.
type State int

const (
	// Accumulating means terms are still being folded in.
	Accumulating State = iota
	// Converged means the newest term was negligible against the running sum.
	Converged
	// Exhausted means the summation reached min(n, M) without converging.
	Exhausted
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is a completed Surprise evaluation.
type Result struct {
	Stats      Stats
	Score      float64 // -log10 of the tail probability, >= 0
	LogTail    float64 // log10 of the accumulated tail probability
	State      State   // Converged or Exhausted
	Iterations int     // Terms folded in after the first
	LastJ      int64   // Last support value summed
	Degenerate bool    // The tail sum reached probability one and was sign-corrected
}

// Evaluate validates s and runs the tail summation, returning the score along
// with how the summation ended.
func Evaluate(s Stats) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return evaluate(s), nil
}

// Score validates s and returns its Surprise.
func Score(s Stats) (float64, error) {
	r, err := Evaluate(s)
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// SurpriseScore is Score with positional arguments.
func SurpriseScore(F, M, n, p int64) (float64, error) {
	return Score(Stats{F: F, M: M, N: n, P: p})
}

// evaluate runs the summation for statistics already known to be valid.
// At most Minimum()-P terms follow the seed, so the loop is bounded.
func evaluate(s Stats) *Result {
	minimum := s.Minimum()
	logDenominator := logChoose(s.F, s.N)

	j := s.P
	var acc Accumulator
	acc.Seed(logHyperPmf(s.F, s.M, s.N, j, logDenominator))

	state := Accumulating
	for state == Accumulating && j < minimum {
		j++
		if acc.Add(logHyperPmf(s.F, s.M, s.N, j, logDenominator)) {
			state = Converged
		}
	}
	if state == Accumulating {
		state = Exhausted
	}

	logP := acc.LogP()
	// A tail that sums to one can round to just above zero
	if logP > 0 {
		logP = 0
	}
	degenerate := false
	if logP == 0 {
		logP *= -1
		degenerate = true
	}

	return &Result{
		Stats:      s,
		Score:      -logP,
		LogTail:    logP,
		State:      state,
		Iterations: int(j - s.P),
		LastJ:      j,
		Degenerate: degenerate,
	}
}
