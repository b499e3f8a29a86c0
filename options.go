package clustergo

import "log/slog"

const (
	// DefaultMaxIterations caps the assign/update loop of a single run.
	DefaultMaxIterations = 100

	// DefaultTolerance is the per-coordinate tolerance for the centroid
	// stability check that decides convergence.
	DefaultTolerance = 1e-6
)

type options struct {
	maxIterations int
	tolerance     float64
	logger        *slog.Logger
	observer      func(iteration int, wcss float64)
}

// Option configures a KMeans engine.
type Option func(*options)

// WithMaxIterations sets the iteration cap. Reaching the cap without
// convergence is a normal terminal state, not an error.
//
// Values < 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIterations = n
		}
	}
}

// WithTolerance sets the per-coordinate tolerance used by the centroid
// stability check. The run converges when every centroid coordinate is within
// tolerance of its value in the previous iteration (all-close, not exact
// equality).
//
// Values <= 0 are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithLogger sets the slog.Logger used for per-iteration debug logs.
// If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers a hook invoked once per iteration with the iteration
// number (1-based) and the WCSS of the assignment just computed. Intended for
// instrumented runs in tests and diagnostics; WCSS is only computed when an
// observer is registered.
func WithObserver(fn func(iteration int, wcss float64)) Option {
	return func(o *options) {
		o.observer = fn
	}
}
