// Package bounds computes the two successively tighter deviation bounds
// (rho1, rho2) via upper bounds on the empirical Rademacher average,
// obtained by minimising a specialised log-sum-exp objective built from the
// per-item and per-itemset combinatorial statistics in internal/core.
package bounds

import "math"

// Log2 is the natural logarithm of 2.
const Log2 = math.Ln2

// LogCosh computes ln(cosh(x)) in the numerically stable form
// |x| + ln1p(exp(-2|x|)) - ln(2).
func LogCosh(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		x = -x
	}
	return x + math.Log1p(math.Exp(-2*x)) - Log2
}

// LogSumExp folds a new log-domain term b into the running log-domain sum
// a, i.e. returns ln(exp(a)+exp(b)), without overflow. logsumexp(-Inf, x) is
// x; logsumexp(-Inf, -Inf) is -Inf.
func LogSumExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	m := math.Max(a, b)
	return m + math.Log1p(math.Exp(math.Min(a, b)-m))
}

// LogBinom computes ln(C(n, t)), the natural logarithm of the binomial
// coefficient, using the standard symmetry and recursive identities to avoid
// overflow for even moderately large n.
func LogBinom(n, t uint64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return math.Log(float64(n))
	}
	if 2*t > n {
		return LogBinom(n, n-t)
	}
	r := math.Log(float64(n - t + 1))
	for i := uint64(2); i <= t; i++ {
		r += math.Log(float64(n-t+i)) - math.Log(float64(i))
	}
	return r
}

// logAccumulator folds log-domain terms via LogSumExp, starting from ln(0).
type logAccumulator struct {
	v float64
}

func newLogAccumulator() *logAccumulator {
	return &logAccumulator{v: math.Inf(-1)}
}

func (a *logAccumulator) add(term float64) {
	a.v = LogSumExp(a.v, term)
}

func (a *logAccumulator) value() float64 { return a.v }
