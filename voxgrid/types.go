// Package voxgrid defines core types, options, and sentinel errors for
// the voxgrid subpackage of github.com/katalvlaran/floodgrid.
package voxgrid

import (
	"errors"

	"github.com/katalvlaran/floodgrid/grid"
)

// Sentinel errors for voxgrid operations.
var (
	// ErrEmptyGrid indicates the input cube has no layers, rows, or columns.
	ErrEmptyGrid = errors.New("voxgrid: input grid must have at least one layer, row and column")
	// ErrNonRectangular indicates layers or rows of differing dimensions.
	ErrNonRectangular = errors.New("voxgrid: all layers must share the same rectangular shape")
	// ErrDepthRange indicates Options.Depth does not address a layer of the cube.
	ErrDepthRange = errors.New("voxgrid: depth must address a layer of the grid")
	// ErrOutOfBounds indicates a start cell outside the grid.
	ErrOutOfBounds = errors.New("voxgrid: cell out of bounds")
)

// Options contains tunable parameters for voxel-grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered traversable.
	LandThreshold int
	// Depth is the number of input layers lying below the reference layer
	// z=0; the first layer of the value cube holds level -Depth. Must be
	// in [0, layers-1].
	Depth int
}

// DefaultOptions returns Options with default settings:
// LandThreshold=1 (values ≥1 are land), Depth=0 (the first layer is z=0).
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Depth:         0,
	}
}

// VoxelGrid treats a stack of 2D integer grids as a voxel map. It is
// immutable once built. Width and Height define each layer's dimensions;
// Values[bounds.Index(z)][y][x] holds the original input value.
type VoxelGrid struct {
	Width, Height int
	Values        [][][]int
	LandThreshold int

	bounds grid.LayerBounds
}
