// Package floodgrid is a small toolkit for connectivity-based region
// discovery ("flood fill") over 2D and 3D grids of discrete cells.
//
// 🚀 What is floodgrid?
//
//	A pure-Go library answering "which cells are reachable from here?"
//	for any caller-defined notion of traversability:
//		• Fill4  — generic 4-connected BFS over any point type, collecting results
//		• Visit26 — 3D visitor fill over all 26 cube neighbors with layered priority
//		• Scan10 — scanline 3D fill that batches horizontal runs into spans
//
// ✨ Why choose floodgrid?
//
//   - Decoupled – the grid and the traversability rule stay on your side,
//     supplied as a predicate; results flow back through return values or
//     a visitor callback
//   - Incremental – Fill4 shares a caller-owned visited set across calls,
//     so successive fills never reprocess claimed cells
//   - Fast on open terrain – Scan10 queues whole spans instead of cells,
//     with corner-wrap and vertical-offshoot handling between stacked layers
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	grid/      — Point, TriPoint, direction offsets & layer bounds
//	floodfill/ — the three traversal algorithms and the Span machinery
//	voxgrid/   — a concrete voxel-grid wrapper with region discovery on top
//
// Quick ASCII example (one z-layer, # = wall, . = open, S = start):
//
//	# # # # #
//	# . . . #
//	# . S . #
//	# # # # #
//
//	Fill4 from S with "is open?" returns the six open cells, each exactly once.
//
// Dive into each package's doc.go for contracts, complexity and edge cases.
//
//	go get github.com/katalvlaran/floodgrid
package floodgrid
