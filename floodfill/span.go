package floodfill

import "github.com/katalvlaran/floodgrid/grid"

// Span is the unit of work of the scanline fill: a run of cells on one row
// of one layer, annotated with the direction it is expanding toward.
//
// Invariant: StartX ≤ EndX. The fill never constructs a degenerate span.
type Span struct {
	// StartX and EndX bound the run's horizontal extent, inclusive.
	StartX, EndX int
	// Y and Z locate the row and layer the span lives on.
	Y, Z int
	// DY is the row direction the span propagates toward: +1 or -1.
	// Zero only on pending spans, whose row direction is decided once the
	// offshoot is confirmed.
	DY int
	// DZ is nonzero only on pending spans: the vertical direction hint the
	// span's cells must still be evaluated with (+1 or -1).
	DZ int
}

// Pending reports whether the span is a vertical offshoot awaiting
// predicate evaluation rather than a confirmed horizontal run.
func (s Span) Pending() bool { return s.DZ != 0 }

// backlog holds one LIFO stack of not-yet-processed spans per layer,
// indexed by the biased layer level. A span is always stored under its own
// Z; pushes outside the valid layer range are the caller's bug, so push
// assumes Contains(s.Z).
type backlog struct {
	bounds grid.LayerBounds
	stacks [][]Span
}

func newBacklog(bounds grid.LayerBounds) *backlog {
	return &backlog{
		bounds: bounds,
		stacks: make([][]Span, bounds.Layers()),
	}
}

// push stacks s onto its layer's backlog.
func (b *backlog) push(s Span) {
	i := b.bounds.Index(s.Z)
	b.stacks[i] = append(b.stacks[i], s)
}

// pop removes and returns the most recently pushed span on layer z.
func (b *backlog) pop(z int) (Span, bool) {
	if !b.bounds.Contains(z) {
		return Span{}, false
	}
	i := b.bounds.Index(z)
	n := len(b.stacks[i])
	if n == 0 {
		return Span{}, false
	}
	s := b.stacks[i][n-1]
	b.stacks[i] = b.stacks[i][:n-1]
	return s, true
}

// popTopmost scans layers top to bottom and pops from the first non-empty
// stack, returning the span and its layer level. ok is false when every
// layer is exhausted, which terminates the fill.
func (b *backlog) popTopmost() (s Span, z int, ok bool) {
	for z = b.bounds.Top(); z >= b.bounds.Bottom(); z-- {
		if s, ok = b.pop(z); ok {
			return s, z, true
		}
	}
	return Span{}, 0, false
}
