package surprise

import "math"

// LogBinomial returns log10 C(n, k) without forming the coefficient itself.
// It returns a *PreconditionError unless 0 <= k <= n.
func LogBinomial(n, k int64) (float64, error) {
	if n < 0 {
		return 0, violation("LogBinomial", "n", n, ">= 0")
	}
	if k < 0 || k > n {
		return 0, violation("LogBinomial", "k", k, "in [0, %d]", n)
	}
	return logChoose(n, k), nil
}

// logChoose is LogBinomial for arguments already known to satisfy 0 <= k <= n.
// C(n,k) = C(n,n-k), so only the shorter of the two ranges is summed.
func logChoose(n, k int64) float64 {
	if k == 0 || k == n {
		return 0
	}

	t := n - k
	if t < k {
		t = k
	}

	// log10(n!/t!) - log10((n-t)!)
	return sumLog10(t+1, n) - sumLog10(2, n-t)
}

// sumLog10 returns sum(log10(i)) for i in [lo, hi]; an empty range sums to 0.
func sumLog10(lo, hi int64) float64 {
	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += math.Log10(float64(i))
	}
	return sum
}
