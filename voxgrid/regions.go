package voxgrid

import (
	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/grid"
)

// Region discovers the connected land region containing start, using the
// 10-connected scanline fill (4 horizontal neighbors plus direct vertical
// moves). Cells are returned in visit order. A land-less start yields an
// empty region; a start outside the grid returns ErrOutOfBounds.
//
// Time: O(W×H×L) worst case. Memory: O(region size).
func (vg *VoxelGrid) Region(start grid.TriPoint) ([]grid.TriPoint, error) {
	if !vg.InBounds(start) {
		return nil, ErrOutOfBounds
	}
	var cells []grid.TriPoint
	err := floodfill.Scan10(start, vg.bounds, vg.Traversable, func(p grid.TriPoint) {
		cells = append(cells, p)
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// Regions partitions all land cells into 10-connected regions, scanning
// layers bottom to top and rows in row-major order, so the result order
// is deterministic: each region is keyed by its lowest-layer, topmost,
// leftmost cell.
//
// Time: O(W×H×L). Memory: O(W×H×L).
func (vg *VoxelGrid) Regions() ([][]grid.TriPoint, error) {
	seen := make(map[grid.TriPoint]bool)
	var regions [][]grid.TriPoint

	for z := vg.bounds.Bottom(); z <= vg.bounds.Top(); z++ {
		for y := 0; y < vg.Height; y++ {
			for x := 0; x < vg.Width; x++ {
				seed := grid.TriPoint{X: x, Y: y, Z: z}
				if seen[seed] || !vg.Traversable(seed, floodfill.SameLevel) {
					continue
				}
				cells, err := vg.Region(seed)
				if err != nil {
					return nil, err
				}
				for _, p := range cells {
					seen[p] = true
				}
				regions = append(regions, cells)
			}
		}
	}

	return regions, nil
}

// LayerRegion discovers the 4-connected land region containing start on
// start's layer only, ignoring vertical connectivity. Points are returned
// in discovery order, projected onto the layer.
//
// Time: O(W×H). Memory: O(region size).
func (vg *VoxelGrid) LayerRegion(start grid.TriPoint) ([]grid.Point, error) {
	if !vg.InBounds(start) {
		return nil, ErrOutOfBounds
	}
	visited := make(map[grid.Point]bool)
	pred := func(p grid.Point) bool {
		return vg.Traversable(grid.TriPoint{X: p.X, Y: p.Y, Z: start.Z}, floodfill.SameLevel)
	}
	return floodfill.Fill4(start.Flat(), visited, pred)
}
