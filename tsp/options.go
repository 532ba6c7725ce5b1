// Package tsp - functional options shared by the exact solver and SolveAll.
package tsp

import "runtime"

const (
	// DefaultMaxNodes bounds the instance size accepted by HeldKarpPath.
	// At n=20 the DP table holds 20·2²⁰ slots (about 180 MiB including the parent table).
	DefaultMaxNodes = 20

	// MaxSupportedNodes is the hard ceiling for WithMaxNodes. Parent
	// indices are stored as int8 and masks as int, and the table would
	// not fit in memory well before either limit matters.
	MaxSupportedNodes = 30
)

const (
	panicMaxNodesInvalid = "tsp: WithMaxNodes: n must be in [1, MaxSupportedNodes]"
	panicWorkersInvalid  = "tsp: WithWorkers: n must be positive"
)

// Option configures a solve. Constructors panic only on nonsensical
// programmer-supplied values.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxNodes      int
	metricClosure bool
	workers       int

	onSubset func(mask uint) // test hook: observes DP subset order
}

// WithMaxNodes overrides DefaultMaxNodes. Memory grows as n·2ⁿ, so each
// extra node doubles the table; size this to the host, not the data.
func WithMaxNodes(n int) Option {
	if n < 1 || n > MaxSupportedNodes {
		panic(panicMaxNodesInvalid)
	}

	return func(o *Options) { o.maxNodes = n }
}

// WithMetricClosure runs Floyd–Warshall on a private copy of the matrix
// before solving, so a missing (+Inf) edge costs the cheapest detour.
// The caller's matrix is left untouched.
func WithMetricClosure() Option {
	return func(o *Options) { o.metricClosure = true }
}

// WithWorkers bounds the number of concurrent solves in SolveAll.
// Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxNodes: DefaultMaxNodes,
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
