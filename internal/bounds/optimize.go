package bounds

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/amira-go/amira/internal/amiraerr"
)

// Optimizer is the derivative-free local minimiser abstraction described in
// the design notes: given f with a unique minimum, a lower bound lb, an
// initial point x0, and an absolute f-tolerance, return (x*, f(x*)).
type Optimizer interface {
	Minimize(f Objective, lb, x0, ftolAbs float64) (xStar, fStar float64, err error)
}

// NelderMeadOptimizer wraps gonum.org/v1/gonum/optimize's Nelder-Mead
// method, a derivative-free local minimiser, behind the Optimizer
// interface. The lower-bound constraint is enforced with a barrier: the
// wrapped objective returns +Inf outside (lb, +Inf), which NelderMead, a
// direct-search method, handles without needing a gradient at the boundary.
type NelderMeadOptimizer struct{}

// Minimize runs Nelder-Mead on f starting at x0, stopping when the absolute
// change in the objective value falls below ftolAbs.
func (NelderMeadOptimizer) Minimize(f Objective, lb, x0, ftolAbs float64) (float64, float64, error) {
	barrier := func(x []float64) float64 {
		if x[0] <= lb {
			return math.Inf(1)
		}
		return f(x[0])
	}
	problem := optimize.Problem{Func: barrier}
	settings := &optimize.Settings{
		FuncEvaluations: 0,
		Converger: &optimize.FunctionConverge{
			Absolute:   ftolAbs,
			Iterations: 20,
		},
	}
	result, err := optimize.Minimize(problem, []float64{x0}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, amiraerr.NewOptimiser("Nelder-Mead minimisation failed", err)
	}
	if math.IsInf(result.F, 0) || math.IsNaN(result.F) {
		return 0, 0, amiraerr.NewOptimiser("objective diverged during minimisation", nil)
	}
	return result.X[0], result.F, nil
}

// DefaultOptimizer is the Optimizer used by ComputeEraEps unless overridden.
var DefaultOptimizer Optimizer = NelderMeadOptimizer{}
