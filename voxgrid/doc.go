// Package voxgrid treats a stack of 2D integer grids as a voxel map,
// providing the concrete traversability predicate and region discovery
// the floodfill package is parameterized over.
//
// What:
//
//   - VoxelGrid wraps a rectangular [][][]int value cube with a tunable
//     LandThreshold; cells with value ≥ LandThreshold are "land"
//     (traversable), the rest "water".
//   - Region discovers one connected land region with the scanline fill.
//   - Regions partitions all land cells into 10-connected regions.
//   - LayerRegion discovers a 4-connected region on a single layer.
//
// Why:
//
//   - Game maps: room, cave and gas-pocket detection across z-levels.
//   - Topology analysis: count caverns, find isolated pockets, measure
//     reachable volume.
//   - A worked, tested consumer of the floodfill callback contracts.
//
// Complexity (W×H cells per layer, L layers):
//
//   - Region:      O(W×H×L) worst case, Memory: O(W×H×L).
//   - Regions:     O(W×H×L), Memory: O(W×H×L).
//   - LayerRegion: O(W×H),   Memory: O(W×H).
//
// Options:
//
//   - Options.LandThreshold: minimum value considered traversable.
//   - Options.Depth: how many of the stacked layers lie below the
//     reference layer z=0.
//
// Errors:
//
//   - ErrEmptyGrid: the value cube has no layers, rows, or columns.
//   - ErrNonRectangular: layers or rows of differing dimensions.
//   - ErrDepthRange: Options.Depth does not address a layer of the cube.
//   - ErrOutOfBounds: a queried start cell lies outside the grid.
package voxgrid
