package location

import (
	"strings"

	"github.com/samber/lo"
)

// Filter selects records.
type Filter func(Record) bool

// StatePrefix keeps records whose state name starts with prefix.
func StatePrefix(prefix string) Filter {
	return func(r Record) bool { return strings.HasPrefix(r.State, prefix) }
}

// Named keeps records whose capital or state is one of names.
func Named(names ...string) Filter {
	return func(r Record) bool {
		return lo.ContainsBy(names, r.Matches)
	}
}

// AnyOf keeps records accepted by at least one of filters.
// With no filters it keeps nothing.
func AnyOf(filters ...Filter) Filter {
	return func(r Record) bool {
		return lo.SomeBy(filters, func(f Filter) bool { return f(r) })
	}
}

// Filter returns the records accepted by f, preserving order.
func (s Set) Filter(f Filter) Set {
	return lo.Filter(s, func(r Record, _ int) bool { return f(r) })
}
