// Package lvroute finds exact shortest routes that start at one location,
// end at another and visit every location in between exactly once.
//
// 🚀 What is lvroute?
//
//	A small, dependency-light toolkit around one exact algorithm:
//		• Cost matrices: validated dense storage, gonum interop, metric closure
//		• Exact solver: Held–Karp over bitmask subsets, fixed start and end
//		• Batch solving: independent queries in parallel, bounded workers
//		• Locations: JSON records, filters, great-circle cost matrices
//		• Storage: SQLite location table and a persistent distance cache
//
// ✨ Why lvroute?
//
//   - Exact – the returned path is optimal, not a heuristic estimate
//   - Predictable – sentinel errors in a fixed check order
//   - Bounded – instance size is capped before any table is allocated
//
// Packages:
//
//	matrix/       cost matrix type, builders, validators, Floyd–Warshall
//	tsp/          HeldKarpPath, MinPathCost, SolveAll, path utilities
//	geo/          great-circle distance in kilometres
//	location/     location records, selection and cost-matrix building
//	store/        SQLite persistence and the cached distance source
//	cmd/lvroute/  command-line front end
//
// Quick example (4 nodes, from 2 to 0):
//
//	2 ──30── 3 ──25── 1 ──10── 0     total 65
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
