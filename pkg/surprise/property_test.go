package surprise

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// statsFromFractions maps generated fractions onto a valid point of the
// hypergeometric support for a network of the given node count.
func statsFromFractions(nodes int64, mFrac, nFrac, pFrac float64) Stats {
	F := nodes * (nodes - 1) / 2
	M := int64(mFrac * float64(F))
	n := int64(nFrac * float64(F))

	lo := max(0, n-(F-M))
	hi := min(n, M)
	p := lo + int64(pFrac*float64(hi-lo))

	return Stats{F: F, M: M, N: n, P: p}
}

// TestSurpriseProperties uses property-based testing to verify numeric invariants
func TestSurpriseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	if testing.Short() {
		parameters.MinSuccessfulTests = 20
	}

	properties := gopter.NewProperties(parameters)

	properties.Property("LogBinomial is symmetric", prop.ForAll(
		func(n int64, kFrac float64) bool {
			k := int64(kFrac * float64(n))
			a, errA := LogBinomial(n, k)
			b, errB := LogBinomial(n, n-k)
			return errA == nil && errB == nil && a == b
		},
		gen.Int64Range(0, 5000),
		gen.Float64Range(0, 1),
	))

	properties.Property("LogBinomial boundaries are zero", prop.ForAll(
		func(n int64) bool {
			lo, _ := LogBinomial(n, 0)
			hi, _ := LogBinomial(n, n)
			return lo == 0 && hi == 0
		},
		gen.Int64Range(0, 1_000_000),
	))

	properties.Property("score is non-negative", prop.ForAll(
		func(nodes int64, mFrac, nFrac, pFrac float64) bool {
			score, err := Score(statsFromFractions(nodes, mFrac, nFrac, pFrac))
			return err == nil && score >= 0 && !math.Signbit(score) && !math.IsNaN(score)
		},
		gen.Int64Range(1, 80),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("score does not decrease as p grows", prop.ForAll(
		func(nodes int64, mFrac, nFrac, pFrac float64) bool {
			s := statsFromFractions(nodes, mFrac, nFrac, pFrac)
			if s.P >= s.Minimum() {
				return true
			}
			next := s
			next.P++

			a, errA := Score(s)
			b, errB := Score(next)
			return errA == nil && errB == nil && b >= a-1e-9
		},
		gen.Int64Range(2, 80),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("tail loop is bounded by the support", prop.ForAll(
		func(nodes int64, mFrac, nFrac, pFrac float64) bool {
			s := statsFromFractions(nodes, mFrac, nFrac, pFrac)
			r, err := Evaluate(s)
			if err != nil {
				return false
			}
			return int64(r.Iterations) <= s.Minimum()-s.P &&
				r.LastJ <= s.Minimum() &&
				(r.State == Converged || r.State == Exhausted)
		},
		gen.Int64Range(1, 120),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.Property("singleton partitions score zero", prop.ForAll(
		func(nodes int64, nFrac float64) bool {
			s := statsFromFractions(nodes, 0, nFrac, 0)
			score, err := Score(s)
			return err == nil && score == 0 && !math.Signbit(score)
		},
		gen.Int64Range(1, 200),
		gen.Float64Range(0, 1),
	))

	properties.Property("log-sum is commutative", prop.ForAll(
		func(a, b float64) bool {
			if a == 0 || b == 0 {
				return true
			}
			_, ab := CombineLogProbabilities(a, b)
			_, ba := CombineLogProbabilities(b, a)
			return ab == ba
		},
		gen.Float64Range(-1000, 0),
		gen.Float64Range(-1000, 0),
	))

	properties.Property("log-sum stays finite and bounded", prop.ForAll(
		func(a, b float64) bool {
			if a == 0 || b == 0 {
				return true
			}
			_, updated := CombineLogProbabilities(a, b)
			if math.IsNaN(updated) || math.IsInf(updated, 0) {
				return false
			}
			hi := math.Max(a, b)
			return updated >= hi && updated <= hi+math.Log10(2)+1e-12
		},
		gen.Float64Range(-1000, 0),
		gen.Float64Range(-1000, 0),
	))

	properties.TestingRun(t)
}
