package surprise

// LogHyperPmf returns log10 of the hypergeometric probability of drawing exactly
// j marked slots when n slots are drawn from F, of which M are marked.
func LogHyperPmf(F, M, n, j int64) (float64, error) {
	const op = "LogHyperPmf"

	if F < 0 {
		return 0, violation(op, "F", F, ">= 0")
	}
	if M < 0 || M > F {
		return 0, violation(op, "M", M, "in [0, %d]", F)
	}
	if n < 0 || n > F {
		return 0, violation(op, "n", n, "in [0, %d]", F)
	}
	if j < 0 || j > M {
		return 0, violation(op, "j", j, "in [0, %d]", M)
	}
	if n-j > F-M {
		return 0, violation(op, "j", j, ">= n-(F-M) = %d", n-(F-M))
	}

	return logHyperPmf(F, M, n, j, logChoose(F, n)), nil
}

// logHyperPmf takes the j-invariant denominator log10 C(F, n) precomputed.
func logHyperPmf(F, M, n, j int64, logDenominator float64) float64 {
	return logChoose(M, j) + logChoose(F-M, n-j) - logDenominator
}
