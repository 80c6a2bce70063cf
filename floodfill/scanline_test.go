package floodfill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid/floodfill"
	"github.com/katalvlaran/floodgrid/grid"
)

// flatBounds is the single-layer stack used by the 2D-shaped tests.
var flatBounds = grid.LayerBounds{}

// onLayer lifts a 2D point predicate onto layer z of a TriPredicate.
func onLayer(z int, flat func(grid.Point) bool) floodfill.TriPredicate {
	return func(p grid.TriPoint, _ int) bool {
		return p.Z == z && flat(p.Flat())
	}
}

// scanSet runs Scan10 and returns the visited cells as a set.
func scanSet(t *testing.T, start grid.TriPoint, bounds grid.LayerBounds, pred floodfill.TriPredicate) map[grid.TriPoint]bool {
	t.Helper()
	got := make(map[grid.TriPoint]bool)
	err := floodfill.Scan10(start, bounds, pred, func(p grid.TriPoint) {
		assert.False(t, got[p], "cell %v visited twice", p)
		got[p] = true
	})
	require.NoError(t, err)
	return got
}

// TestScan10_Errors verifies nil-callback and out-of-range-layer rejection.
func TestScan10_Errors(t *testing.T) {
	noop := func(grid.TriPoint) {}
	pred := inBox(0, 0, 0, 1, 1, 0)

	err := floodfill.Scan10(grid.TriPoint{}, flatBounds, nil, noop)
	assert.ErrorIs(t, err, floodfill.ErrNilPredicate)

	err = floodfill.Scan10(grid.TriPoint{}, flatBounds, pred, nil)
	assert.ErrorIs(t, err, floodfill.ErrNilVisitor)

	err = floodfill.Scan10(grid.TriPoint{Z: 5}, flatBounds, pred, noop)
	assert.ErrorIs(t, err, floodfill.ErrLayerBounds)
	err = floodfill.Scan10(grid.TriPoint{Z: -1}, grid.LayerBounds{Height: 3}, pred, noop)
	assert.ErrorIs(t, err, floodfill.ErrLayerBounds)
}

// TestScan10_RectangleMatchesFill4 checks cross-algorithm equivalence on a
// flat rectangular room.
func TestScan10_RectangleMatchesFill4(t *testing.T) {
	flat := func(p grid.Point) bool {
		return p.X >= 0 && p.X <= 4 && p.Y >= 0 && p.Y <= 3
	}
	got := scanSet(t, grid.TriPoint{X: 2, Y: 1}, flatBounds, onLayer(0, flat))

	visited := make(map[grid.Point]bool)
	want, err := floodfill.Fill4(grid.Point{X: 2, Y: 1}, visited, flat)
	require.NoError(t, err)

	assert.Len(t, got, len(want))
	for _, p := range want {
		assert.True(t, got[grid.TriPoint{X: p.X, Y: p.Y}], "cell %v missed", p)
	}
}

// TestScan10_CornerCoverage checks span corner-wrap handling on an
// L-shaped region: a vertical arm at x=0 and a horizontal arm on y=4,
// fully filled from the far end of the vertical arm.
func TestScan10_CornerCoverage(t *testing.T) {
	flat := func(p grid.Point) bool {
		return (p.X == 0 && p.Y >= 0 && p.Y <= 4) ||
			(p.Y == 4 && p.X >= 0 && p.X <= 4)
	}
	got := scanSet(t, grid.TriPoint{}, flatBounds, onLayer(0, flat))

	assert.Len(t, got, 9)
	for y := 0; y <= 4; y++ {
		assert.True(t, got[grid.TriPoint{X: 0, Y: y}], "vertical arm cell (0,%d) missed", y)
	}
	for x := 0; x <= 4; x++ {
		assert.True(t, got[grid.TriPoint{X: x, Y: 4}], "horizontal arm cell (%d,4) missed", x)
	}
}

// TestScan10_DonutMatchesFill4 checks gap handling inside spans: a 5×5
// room with a blocked center is filled completely around the hole.
func TestScan10_DonutMatchesFill4(t *testing.T) {
	flat := func(p grid.Point) bool {
		if p.X < 0 || p.X > 4 || p.Y < 0 || p.Y > 4 {
			return false
		}
		return !(p.X == 2 && p.Y == 2)
	}
	got := scanSet(t, grid.TriPoint{}, flatBounds, onLayer(0, flat))

	visited := make(map[grid.Point]bool)
	want, err := floodfill.Fill4(grid.Point{}, visited, flat)
	require.NoError(t, err)

	assert.Len(t, got, len(want))
	for _, p := range want {
		assert.True(t, got[grid.TriPoint{X: p.X, Y: p.Y}], "cell %v missed", p)
	}
	assert.False(t, got[grid.TriPoint{X: 2, Y: 2}], "hole must stay unfilled")
}

// TestScan10_VerticalPropagation checks that a traversable cell directly
// below the starting layer is reached and that its predicate evaluation
// carries the MovedDown hint.
func TestScan10_VerticalPropagation(t *testing.T) {
	bounds := grid.LayerBounds{Depth: 1}
	hints := make(map[grid.TriPoint][]int)
	pred := func(p grid.TriPoint, vertical int) bool {
		ok := p.X == 0 && p.Y == 0 && (p.Z == 0 || p.Z == -1)
		if ok {
			hints[p] = append(hints[p], vertical)
		}
		return ok
	}

	got := make(map[grid.TriPoint]bool)
	err := floodfill.Scan10(grid.TriPoint{}, bounds, pred, func(p grid.TriPoint) {
		got[p] = true
	})
	require.NoError(t, err)

	assert.True(t, got[grid.TriPoint{Z: -1}], "lower-layer cell missed")
	assert.Contains(t, hints[grid.TriPoint{Z: -1}], floodfill.MovedDown,
		"lower-layer cell never evaluated with the downward hint")
}

// TestScan10_TwoLayerShaft checks upward propagation through a hole and
// horizontal reseeding on the upper layer.
//
// Layer 0 is a 5×1 corridor; layer 1 is a 5×1 corridor reachable only
// through the column at x=2.
func TestScan10_TwoLayerShaft(t *testing.T) {
	bounds := grid.LayerBounds{Height: 1}
	pred := func(p grid.TriPoint, vertical int) bool {
		if p.Y != 0 || p.X < 0 || p.X > 4 {
			return false
		}
		switch p.Z {
		case 0:
			return true
		case 1:
			// The hatch at x=2 admits upward movement; the rest of the
			// upper corridor is reachable only horizontally from it.
			if vertical == floodfill.MovedUp {
				return p.X == 2
			}
			return true
		default:
			return false
		}
	}

	got := scanSet(t, grid.TriPoint{}, bounds, pred)

	assert.Len(t, got, 10)
	for x := 0; x <= 4; x++ {
		assert.True(t, got[grid.TriPoint{X: x}], "lower corridor cell (%d) missed", x)
		assert.True(t, got[grid.TriPoint{X: x, Z: 1}], "upper corridor cell (%d) missed", x)
	}
}

// TestScan10_LowerIslandRevisited checks the backlog's layer fallback: an
// island on the lower layer reachable only by walking up, across the upper
// layer, and back down is still discovered.
func TestScan10_LowerIslandRevisited(t *testing.T) {
	bounds := grid.LayerBounds{Height: 1}
	// Layer 0: two corridors x∈[0,1] and x∈[3,4], separated at x=2.
	// Layer 1: full corridor x∈[0,4] bridging them.
	pred := func(p grid.TriPoint, _ int) bool {
		if p.Y != 0 || p.X < 0 || p.X > 4 {
			return false
		}
		switch p.Z {
		case 0:
			return p.X != 2
		case 1:
			return true
		default:
			return false
		}
	}

	got := scanSet(t, grid.TriPoint{}, bounds, pred)

	assert.True(t, got[grid.TriPoint{X: 3}], "far island cell (3,0,0) missed")
	assert.True(t, got[grid.TriPoint{X: 4}], "far island cell (4,0,0) missed")
	assert.Len(t, got, 9)
}

// TestScan10_PendingTrailingRun checks that a confirmed run still open at
// the end of a pending span is emitted: the only hatch column sits at the
// rightmost cell of the lower corridor.
func TestScan10_PendingTrailingRun(t *testing.T) {
	bounds := grid.LayerBounds{Height: 1}
	pred := func(p grid.TriPoint, _ int) bool {
		if p.Y != 0 || p.X < 0 || p.X > 4 {
			return false
		}
		switch p.Z {
		case 0:
			return true
		case 1:
			return p.X == 4
		default:
			return false
		}
	}

	got := scanSet(t, grid.TriPoint{}, bounds, pred)

	assert.True(t, got[grid.TriPoint{X: 4, Z: 1}],
		"trailing vertical run at the span end was dropped")
	assert.Len(t, got, 6)
}

// TestScan10_SingleCell checks the degenerate one-cell region.
func TestScan10_SingleCell(t *testing.T) {
	got := scanSet(t, grid.TriPoint{}, flatBounds,
		onLayer(0, func(p grid.Point) bool { return p == grid.Point{} }))
	assert.Len(t, got, 1)
	assert.True(t, got[grid.TriPoint{}])
}

// TestScan10_RejectedStart checks that a rejected start visits nothing and
// terminates.
func TestScan10_RejectedStart(t *testing.T) {
	got := scanSet(t, grid.TriPoint{X: 9, Y: 9}, flatBounds,
		onLayer(0, func(p grid.Point) bool { return p == grid.Point{} }))
	assert.Empty(t, got)
}

// TestScan10_Termination fills a large open room to exercise span batching
// end to end.
func TestScan10_Termination(t *testing.T) {
	flat := func(p grid.Point) bool {
		return p.X >= 0 && p.X < 64 && p.Y >= 0 && p.Y < 64
	}
	got := scanSet(t, grid.TriPoint{X: 31, Y: 31}, flatBounds, onLayer(0, flat))
	assert.Len(t, got, 64*64)
}
