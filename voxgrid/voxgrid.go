// Package voxgrid provides utilities to treat a stack of 2D integer grids
// as a voxel map with a traversability threshold, and to discover
// connected regions of traversable cells with the floodfill algorithms.
//
// Cells with value < LandThreshold are "water"; cells with value ≥
// LandThreshold are "land".
package voxgrid

import (
	"github.com/katalvlaran/floodgrid/grid"
)

// New constructs a VoxelGrid from a non-empty, uniformly rectangular
// value cube values[layer][y][x], deep-copying the input to ensure
// immutability. values[0] holds the lowest layer, level -opts.Depth.
// Returns ErrEmptyGrid if any dimension is zero, ErrNonRectangular if
// layers or rows differ in shape, ErrDepthRange if opts.Depth does not
// address a layer.
// Complexity: O(W×H×L) time and memory.
func New(values [][][]int, opts Options) (*VoxelGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	layers := len(values)
	h, w := len(values[0]), len(values[0][0])
	for _, layer := range values {
		if len(layer) != h {
			return nil, ErrNonRectangular
		}
		for _, row := range layer {
			if len(row) != w {
				return nil, ErrNonRectangular
			}
		}
	}
	if opts.Depth < 0 || opts.Depth >= layers {
		return nil, ErrDepthRange
	}

	// Deep copy to prevent external mutation.
	cells := make([][][]int, layers)
	for l := 0; l < layers; l++ {
		cells[l] = make([][]int, h)
		for y := 0; y < h; y++ {
			cells[l][y] = make([]int, w)
			copy(cells[l][y], values[l][y])
		}
	}

	vg := &VoxelGrid{
		Width:         w,
		Height:        h,
		Values:        cells,
		LandThreshold: opts.LandThreshold,
		bounds:        grid.LayerBounds{Depth: opts.Depth, Height: layers - 1 - opts.Depth},
	}

	return vg, nil
}

// Bounds returns the grid's layer bounds, suitable for passing to
// floodfill.Scan10.
// Complexity: O(1).
func (vg *VoxelGrid) Bounds() grid.LayerBounds {
	return vg.bounds
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (vg *VoxelGrid) InBounds(p grid.TriPoint) bool {
	return p.X >= 0 && p.X < vg.Width &&
		p.Y >= 0 && p.Y < vg.Height &&
		vg.bounds.Contains(p.Z)
}

// Value returns the stored cell value at p; ok is false out of bounds.
// Complexity: O(1).
func (vg *VoxelGrid) Value(p grid.TriPoint) (v int, ok bool) {
	if !vg.InBounds(p) {
		return 0, false
	}
	return vg.Values[vg.bounds.Index(p.Z)][p.Y][p.X], true
}

// Traversable reports whether p is an in-bounds land cell. The vertical
// hint is accepted so the method satisfies floodfill.TriPredicate
// directly; this grid's traversability is vertically symmetric, so the
// hint is ignored.
// Complexity: O(1).
func (vg *VoxelGrid) Traversable(p grid.TriPoint, _ int) bool {
	v, ok := vg.Value(p)
	return ok && v >= vg.LandThreshold
}
