package bounds

import "math"

// EraEps pairs the ERA upper bound omega with the probabilistic maximum
// deviation bound rho derived from it.
type EraEps struct {
	Omega float64
	Rho   float64
}

// span is the width of the co-domain of the families AMIRA bounds (the
// indicator functions of subset containment), always 1.
const span = 1.0

// ComputeEraEps minimises objective over x>0 (initial point 2, absolute
// tolerance 1e-7) to obtain omega = min(objective)/size, then derives rho via
// the self-bounding Rademacher-average bound followed by the absolute
// maximum-deviation bound, both with failure probability delta/2.
func ComputeEraEps(delta float64, size uint64, objective Objective, opt Optimizer) (EraEps, error) {
	if opt == nil {
		opt = DefaultOptimizer
	}
	const lb = 1e-12
	const x0 = 2.0
	const ftolAbs = 1e-7
	_, fStar, err := opt.Minimize(objective, lb, x0, ftolAbs)
	if err != nil {
		return EraEps{}, err
	}
	omega := fStar / float64(size)
	eta := delta / 2

	ra := raBoundSelfBounding(omega, size, eta, span)
	rho := devBoundAbsolute(ra, size, eta, span)
	return EraEps{Omega: omega, Rho: rho}, nil
}

// raBoundSelfBounding upper-bounds the Rademacher average from an ERA upper
// bound era using the self-bounding-function tail inequality.
func raBoundSelfBounding(era float64, size uint64, eta, span float64) float64 {
	gamma := math.Log(1 / eta)
	spanGamma := span * gamma
	n := float64(size)
	second := (spanGamma + math.Sqrt(spanGamma*(spanGamma+4*n*era))) / (2 * n)
	return era + second
}

// devBoundAbsolute upper-bounds the maximum deviation of sample frequencies
// from their expectation, using the "absolute" (two-sided) tail constant
// ln(2).
func devBoundAbsolute(ra float64, size uint64, eta, span float64) float64 {
	return 2*ra + span*math.Sqrt((math.Log(2)-math.Log(eta))/(2*float64(size)))
}
