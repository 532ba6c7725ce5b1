package tsp

// WithSubsetTrace exposes the DP subset-order hook to tests.
func WithSubsetTrace(fn func(mask uint)) Option {
	return func(o *Options) { o.onSubset = fn }
}

// Subset enumeration primitives.
var (
	FirstSubset = firstSubset
	NextSubset  = nextSubset
)
