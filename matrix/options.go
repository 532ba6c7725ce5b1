// SPDX-License-Identifier: MIT
// Package matrix: functional options for cost-matrix construction.
//
// Public builders accept `...Option` and resolve them via gatherOptions.
// Option constructors panic only on nonsensical values (programmer error),
// never on user data.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAllowInf if false, +Inf off-diagonal costs are rejected.
	DefaultAllowInf = false

	// DefaultSymmetric if false, symmetry is not enforced.
	DefaultSymmetric = false

	// DefaultEpsilon is the tolerance for symmetry checks when enabled.
	DefaultEpsilon = 1e-12
)

const panicEpsilonInvalid = "matrix: WithSymmetric: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept `...Option`.
type Options struct {
	allowInf  bool    // +Inf as “no direct edge”
	symmetric bool    // require |a_ij - a_ji| <= eps
	eps       float64 // >= 0
}

// WithAllowInf accepts +Inf off-diagonal entries, read by solvers as
// “no direct edge”. NaN and -Inf are still rejected.
func WithAllowInf() Option {
	return func(o *Options) { o.allowInf = true }
}

// WithSymmetric requires the matrix to be symmetric within eps.
// Panics with a stable message when eps is negative or non-finite.
//
// Complexity: adds an O(n²) upper-triangle scan to construction.
func WithSymmetric(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.symmetric = true
		o.eps = eps
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		allowInf:  DefaultAllowInf,
		symmetric: DefaultSymmetric,
		eps:       DefaultEpsilon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
