package irr

// Config holds the Newton-Raphson stopping rules.
type Config struct {
	// MaxIterations caps the number of Newton steps. Running out of steps
	// without converging yields NaN.
	MaxIterations int

	// AbsoluteAccuracy is the largest step |x1 - x0| accepted as converged.
	AbsoluteAccuracy float64
}

// DefaultConfig is used by InternalRateOfReturn.
var DefaultConfig = Config{
	MaxIterations:    20,
	AbsoluteAccuracy: 1e-7,
}
