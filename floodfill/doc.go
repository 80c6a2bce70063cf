// Package floodfill provides three flood-fill traversals over grids of
// discrete cells: a generic 4-connected collecting fill, a 26-connected
// visitor fill with layered queue priority, and a 10-connected scanline
// fill that batches horizontal runs into spans.
//
// What:
//
//   - Fill4: breadth-first fill over the four orthogonal neighbors of any
//     coordinate type satisfying Node; returns accepted points in discovery
//     order and shares a caller-owned visited set across calls.
//   - Visit26: breadth-first fill over all 26 cube neighbors of a TriPoint,
//     preferring same-level expansion over vertical movement; reports each
//     accepted cell to a visitor exactly once, tagging the predicate with
//     the vertical direction the cell was reached from.
//   - Scan10: scanline fill over 4 horizontal + 2 vertical connectivity,
//     queueing whole spans per layer instead of single cells, with
//     corner-wrap spans around concave corners and pending vertical-offshoot
//     spans between stacked layers.
//
// Why:
//
//   - Region discovery on game maps: rooms, caves, gas/liquid propagation.
//   - Fill4's shared visited set makes a sequence of fills cumulative:
//     cells claimed (or rejected) by one call are never reprocessed by the
//     next, so disjoint regions can be carved out incrementally.
//   - Scan10 trades per-cell queueing for span management; on wide open
//     terrain it enqueues one span where a cell-at-a-time fill enqueues
//     hundreds of points.
//
// Contracts:
//
//   - The predicate decides traversability; the algorithms never interpret
//     cell contents themselves. The predicate must return a stable answer
//     for any given cell for the duration of one call; mutating reachability
//     mid-traversal yields undefined results.
//   - Nothing bounds a fill except the predicate. A predicate that is true
//     over an unbounded domain never terminates; callers bound it to a
//     finite region (for the 3D fills, including all out-of-layer cells).
//   - Vertical hints: the 3D predicates receive SameLevel, MovedUp or
//     MovedDown describing how the queried cell was reached, so asymmetric
//     vertical rules (floors, hatches) can be expressed.
//
// Complexity (R = cells accepted, B = rejected boundary cells):
//
//   - Fill4, Visit26: O(R·d + B) time, O(R) memory (d = 4 or 26).
//   - Scan10: O(R + B) time with far fewer queue operations on open rows;
//     O(R) memory for the visited sets plus the per-layer span backlogs.
//
// Errors:
//
//   - ErrNilPredicate, ErrNilVisitor, ErrNilVisited: missing callbacks or
//     a nil shared visited set.
//   - ErrLayerBounds: Scan10 start layer outside the supplied LayerBounds.
//
// The algorithms themselves produce no errors once started; all effects
// flow through return values, the visitor, and whatever the predicate
// closes over.
package floodfill
