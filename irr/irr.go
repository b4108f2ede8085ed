// Package irr finds the internal rate of return of a periodic cash-flow
// series, and its modified variant with separate finance and reinvestment
// rates.
//
// Numerical failure (zero derivative, a rate of exactly -100%, or no
// convergence within the iteration cap) is reported as NaN. A series shorter
// than two values is a caller bug and panics.
package irr

import "math"

// Result is the outcome of Solve.
type Result struct {
	// Rate is the per-period internal rate of return, or NaN.
	Rate float64
	// Iterations is the number of Newton steps attempted.
	Iterations int
}

// Converged reports whether Rate holds a root.
func (r Result) Converged() bool {
	return !math.IsNaN(r.Rate)
}

// InternalRateOfReturn returns the rate r at which the net present value of
// cashFlows is zero, starting the search from guess. cashFlows[0] is the
// amount at time zero, usually a negative investment.
//
// It returns NaN when the search fails.
func InternalRateOfReturn(cashFlows []float64, guess float64) float64 {
	return Solve(cashFlows, guess, DefaultConfig).Rate
}

// Solve runs Newton-Raphson on
//
//	f(x)  = c0 + Σ c_t / (1+x)^t
//	f'(x) = −Σ t·c_t / (1+x)^(t+1)
//
// for t = 1..n-1, using cfg as the stopping rules. f' is the exact
// derivative of f, so each step is a true Newton step.
func Solve(cashFlows []float64, guess float64, cfg Config) Result {
	if len(cashFlows) < 2 {
		panic("irr: cash flow series must have at least 2 values")
	}

	initial := cashFlows[0]
	payments := cashFlows[1:]
	x0 := guess

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		f, df, ok := npvAndDeriv(initial, payments, x0)
		if !ok || df == 0 {
			return Result{Rate: math.NaN(), Iterations: iter}
		}

		x1 := x0 - f/df
		if math.Abs(x1-x0) <= cfg.AbsoluteAccuracy {
			return Result{Rate: x1, Iterations: iter}
		}
		x0 = x1
	}

	return Result{Rate: math.NaN(), Iterations: cfg.MaxIterations}
}

// npvAndDeriv evaluates f and f' at x in a single pass, carrying a running
// power of (1+x). ok is false when 1+x is zero.
func npvAndDeriv(initial float64, payments []float64, x float64) (f, df float64, ok bool) {
	factor := 1 + x
	if factor == 0 {
		return 0, 0, false
	}

	f = initial
	denom := factor
	for i, c := range payments {
		f += c / denom
		denom *= factor
		df -= float64(i+1) * c / denom
	}
	return f, df, true
}
