package floodfill

// Fill4 flood-fills outward from start over the four orthogonal neighbors,
// collecting every point the predicate accepts, in discovery order.
//
// visited is owned by the caller and mutated in place: every dequeued point
// is marked, whether or not the predicate accepted it. A point rejected
// here is therefore never re-evaluated by a later call sharing the same
// set — intentional memoization that lets sequential calls carve disjoint
// regions out of one grid without reprocessing the boundary between them.
// Never share one set across concurrent calls.
//
// No assumption is made about start satisfying the predicate; a rejected
// start yields an empty result.
//
// Time: O(R·4 + B) for R accepted and B rejected-boundary points.
// Memory: O(R) beyond the caller's visited set.
func Fill4[P Node[P]](start P, visited map[P]bool, pred Predicate[P]) ([]P, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	if visited == nil {
		return nil, ErrNilVisited
	}

	var filled []P
	queue := []P{start}
	// Index-based FIFO; the visited check happens on dequeue, so neighbors
	// are enqueued unconditionally.
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		if !pred(cur) {
			continue
		}
		filled = append(filled, cur)
		for _, n := range cur.Neighbors4() {
			queue = append(queue, n)
		}
	}

	return filled, nil
}
