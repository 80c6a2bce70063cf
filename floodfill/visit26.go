package floodfill

import "github.com/katalvlaran/floodgrid/grid"

// Visit26 flood-fills outward from start over all 26 cube neighbors,
// invoking visit exactly once per cell the predicate accepts.
//
// Three FIFO queues segregate expansion: same-level, moving-up, and
// moving-down. Dequeueing prefers same-level, then up, then down, so all
// horizontally reachable cells at the current priority are exhausted
// before the fill commits further to vertical movement — an approximate
// layer-by-layer expansion that can still cross back to an unexplored
// island on a previously entered layer when horizontal paths lead there.
//
// The queue a cell was drawn from becomes the predicate's vertical hint:
// SameLevel, MovedUp, or MovedDown. There is no built-in top or bottom
// bound; callers encode vertical limits in the predicate.
//
// Time: O(R·26 + B) for R accepted and B rejected-boundary cells.
// Memory: O(R).
func Visit26(start grid.TriPoint, pred TriPredicate, visit TriVisitor) error {
	if pred == nil {
		return ErrNilPredicate
	}
	if visit == nil {
		return ErrNilVisitor
	}

	var same, up, down []grid.TriPoint
	var si, ui, di int // FIFO heads
	visited := make(map[grid.TriPoint]bool)
	same = append(same, start)

	for {
		var cur grid.TriPoint
		vertical := SameLevel
		switch {
		case si < len(same):
			cur = same[si]
			si++
		case ui < len(up):
			cur = up[ui]
			vertical = MovedUp
			ui++
		case di < len(down):
			cur = down[di]
			vertical = MovedDown
			di++
		default:
			return nil
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if !pred(cur, vertical) {
			continue
		}
		visit(cur)
		for _, n := range cur.HorizontalNeighbors() {
			same = append(same, n)
		}
		up = append(up, cur.Above())
		down = append(down, cur.Below())
	}
}
