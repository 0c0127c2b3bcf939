package surprise

import "math"

// ConvergenceThreshold is the log10 gap below which a new tail term is
// considered negligible: the term adds less than 1 part in 10^4.
const ConvergenceThreshold = -4.0

// CombineLogProbabilities returns log10(10^next + 10^running) computed without
// exponentiating either operand, and whether the tail sum has converged.
//
// A next value of exactly 0 leaves running untouched and reports convergence.
func CombineLogProbabilities(next, running float64) (bool, float64) {
	if next == 0 {
		return true, running
	}

	common, diffExponent := next, running-next
	if running > next {
		common, diffExponent = running, next-running
	}

	updated := common + math.Log10(1+math.Pow(10, diffExponent))

	return next-updated <= ConvergenceThreshold, updated
}

// Accumulator folds log10 probabilities into a running log10 sum.
// The zero value holds no contribution; whether a term has been folded in is
// tracked explicitly rather than inferred from a log-probability of 0, which is
// a legitimate value (probability one).
type Accumulator struct {
	logP   float64
	seeded bool
	terms  int
}

// Seed sets the first term of the sum.
func (a *Accumulator) Seed(logP float64) {
	a.logP = logP
	a.seeded = true
	a.terms = 1
}

// Add folds next into the sum and reports whether the sum has converged.
// Adding to an unseeded accumulator seeds it and never converges.
func (a *Accumulator) Add(next float64) bool {
	if !a.seeded {
		a.Seed(next)
		return false
	}

	converged, updated := CombineLogProbabilities(next, a.logP)
	a.logP = updated
	a.terms++
	return converged
}

// LogP returns the accumulated log10 sum.
func (a *Accumulator) LogP() float64 {
	return a.logP
}

// Seeded reports whether at least one term has been folded in.
func (a *Accumulator) Seeded() bool {
	return a.seeded
}

// Terms returns how many terms have been folded in, including the seed.
func (a *Accumulator) Terms() int {
	return a.terms
}
