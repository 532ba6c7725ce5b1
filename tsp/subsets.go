package tsp

// Subset enumeration for the Held–Karp table.
//
// Subsets are bitmasks over vertices 0..n-1. The solver walks them one
// cardinality at a time: every mask of size k is produced before any mask
// of size k+1, because a size-k state only reads size-(k-1) states.
// Within one size, masks come out in increasing numeric order (Gosper's hack).

// firstSubset returns the smallest mask with exactly k bits set (k ≥ 1).
func firstSubset(k int) uint {
	return uint(1)<<uint(k) - 1
}

// nextSubset returns the next larger mask with the same number of set bits.
// x must be non-zero.
func nextSubset(x uint) uint {
	c := x & -x
	r := x + c

	return (((r ^ x) >> 2) / c) | r
}
