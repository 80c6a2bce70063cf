package floodfill

import (
	"fmt"

	"github.com/katalvlaran/floodgrid/grid"
)

// Scan10 flood-fills outward from start over 10-connected neighbors
// (4 horizontal + up + down), invoking visit exactly once per cell the
// predicate accepts. Instead of queueing single cells it queues spans:
// whole horizontal runs of confirmed-traversable cells, held in a LIFO
// backlog per layer. When the current layer's backlog empties, layers are
// scanned top to bottom for remaining work, so an unexplored island on a
// lower layer discovered late is still reached.
//
// Corner coverage is 4-connected: when a scan runs past either end of its
// parent span, a wrap span is emitted on the opposite row direction so the
// fill turns concave corners. Cells touching a run only diagonally sit
// inside some emitted spans and outside others, so diagonal-only adjacency
// may or may not be followed depending on scan direction; only 4-connected
// reachability is guaranteed.
//
// Vertical movement is asymmetric: crossing between layers re-evaluates
// the predicate with MovedUp or MovedDown, and a confirmed crossing
// reseeds horizontal scanning on the new layer via a pending span.
//
// bounds fixes the valid layer range; spans are never emitted for layers
// outside it. A start layer outside bounds is rejected with ErrLayerBounds.
//
// Time: O(R + B) with one queue operation per span, not per cell.
// Memory: O(R) for the visited sets plus the span backlogs.
func Scan10(start grid.TriPoint, bounds grid.LayerBounds, pred TriPredicate, visit TriVisitor) error {
	if pred == nil {
		return ErrNilPredicate
	}
	if visit == nil {
		return ErrNilVisitor
	}
	if !bounds.Contains(start.Z) {
		return fmt.Errorf("%w: z=%d not in [%d, %d]", ErrLayerBounds, start.Z, bounds.Bottom(), bounds.Top())
	}

	w := &scanner{
		bounds:     bounds,
		pred:       pred,
		visit:      visit,
		visited:    make(map[grid.TriPoint]bool),
		vertically: make(map[grid.TriPoint]bool),
		spans:      newBacklog(bounds),
	}

	// Seed with the starting cell expanding both row directions.
	w.spans.push(Span{StartX: start.X, EndX: start.X, Y: start.Y, DY: 1, Z: start.Z})
	w.spans.push(Span{StartX: start.X, EndX: start.X, Y: start.Y - 1, DY: -1, Z: start.Z})

	w.run(start.Z)
	return nil
}

// scanner carries the mutable state of one Scan10 call.
type scanner struct {
	bounds grid.LayerBounds
	pred   TriPredicate
	visit  TriVisitor

	// visited holds horizontally confirmed cells: once entered, a cell is
	// never revisited nor re-passed to the predicate with SameLevel.
	visited map[grid.TriPoint]bool
	// vertically holds cells confirmed through a vertical move. Kept apart
	// from visited so the reseeded horizontal scan still claims them.
	vertically map[grid.TriPoint]bool

	spans *backlog
}

// check is the horizontal admission test: unclaimed and predicate-true at
// same level.
func (w *scanner) check(p grid.TriPoint) bool {
	return !w.visited[p] && w.pred(p, SameLevel)
}

// checkVertical is the admission test for cells reached across layers.
func (w *scanner) checkVertical(p grid.TriPoint, dir int) bool {
	return !w.vertically[p] && w.pred(p, dir)
}

// run drains the backlogs, starting on layer z.
func (w *scanner) run(z int) {
	for {
		s, ok := w.spans.pop(z)
		if !ok {
			// Current layer exhausted: adopt the topmost layer with work.
			if s, z, ok = w.spans.popTopmost(); !ok {
				return
			}
		}
		if s.Pending() {
			w.resolvePending(s)
			continue
		}
		w.scanSpan(s)
	}
}

// resolvePending evaluates a vertical-offshoot span cell by cell with its
// direction hint. Each contiguous confirmed run reseeds horizontal
// scanning on the offshoot's layer as a fresh span pair expanding both row
// directions, including a run still open at the span's end.
func (w *scanner) resolvePending(s Span) {
	runStart := 0
	inRun := false
	for x := s.StartX; x <= s.EndX; x++ {
		p := grid.TriPoint{X: x, Y: s.Y, Z: s.Z}
		if w.checkVertical(p, s.DZ) {
			if !inRun {
				inRun = true
				runStart = x
			}
			w.vertically[p] = true
		} else if inRun {
			w.seedPair(runStart, x-1, s.Y, s.Z)
			inRun = false
		}
	}
	if inRun {
		w.seedPair(runStart, s.EndX, s.Y, s.Z)
	}
}

// seedPair pushes the two confirmed spans that restart horizontal scanning
// over [startX, endX] on layer z: the row itself going +y and the row
// above it going -y.
func (w *scanner) seedPair(startX, endX, y, z int) {
	w.spans.push(Span{StartX: startX, EndX: endX, Y: y, DY: 1, Z: z})
	w.spans.push(Span{StartX: startX, EndX: endX, Y: y - 1, DY: -1, Z: z})
}

// scanSpan processes one confirmed span: a leftward probe past StartX,
// then a rightward scan across the span body that may overrun EndX, with
// continuation, corner-wrap and vertical-offshoot spans emitted along the
// way.
func (w *scanner) scanSpan(s Span) {
	p := grid.TriPoint{X: s.StartX, Y: s.Y, Z: s.Z}

	// Leftward probe. The cell at StartX itself is left for the rightward
	// scan; only cells strictly left of it are claimed here.
	if w.check(p) {
		p.X--
		for w.check(p) {
			w.visit(p)
			w.visited[p] = true
			p.X--
		}
		p.X++
		if p.X < s.StartX {
			// Claimed cells left of the span: wrap around the corner by
			// scanning the opposite row direction over the extension.
			w.spans.push(Span{
				StartX: p.X - 1,
				EndX:   s.StartX - 1,
				Y:      s.Y - s.DY,
				DY:     -s.DY,
				Z:      s.Z,
			})
		}
	}
	furthest := p.X

	// Rightward scan across the span body, overrunning EndX when the
	// terrain allows.
	for x := s.StartX; x <= s.EndX; {
		p = grid.TriPoint{X: x, Y: s.Y, Z: s.Z}
		for w.check(p) {
			w.visit(p)
			w.visited[p] = true
			p.X++
		}
		x = p.X
		if x > furthest {
			// Progress was made: continue on the next row in our direction,
			// widened by one cell each side to keep corner contact, and
			// probe both adjacent layers over the claimed run.
			w.spans.push(Span{StartX: furthest - 1, EndX: x, Y: s.Y + s.DY, DY: s.DY, Z: s.Z})
			if w.bounds.Contains(s.Z + 1) {
				w.spans.push(Span{StartX: furthest, EndX: x - 1, Y: s.Y, Z: s.Z + 1, DZ: 1})
			}
			if w.bounds.Contains(s.Z - 1) {
				w.spans.push(Span{StartX: furthest, EndX: x - 1, Y: s.Y, Z: s.Z - 1, DZ: -1})
			}
		}
		if x-1 > s.EndX {
			// Overran the span's right edge: wrap that extension around the
			// corner on the opposite row direction.
			w.spans.push(Span{
				StartX: s.EndX + 1,
				EndX:   x,
				Y:      s.Y - s.DY,
				DY:     -s.DY,
				Z:      s.Z,
			})
		}
		// x points at a cell that failed the check; skip any further
		// untraversable cells inside the span without emitting anything.
		x++
		for x < s.EndX && !w.pred(grid.TriPoint{X: x, Y: s.Y, Z: s.Z}, SameLevel) {
			x++
		}
		furthest = x
	}
}
