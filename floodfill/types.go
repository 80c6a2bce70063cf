// Package floodfill defines the callback types, vertical direction hints,
// and sentinel errors shared by the three fill algorithms.
package floodfill

import (
	"errors"

	"github.com/katalvlaran/floodgrid/grid"
)

// Sentinel errors for fill invocation.
var (
	// ErrNilPredicate is returned when no predicate is supplied.
	ErrNilPredicate = errors.New("floodfill: predicate is nil")
	// ErrNilVisitor is returned when a visitor fill is invoked without a visitor.
	ErrNilVisitor = errors.New("floodfill: visitor is nil")
	// ErrNilVisited is returned when Fill4 is given a nil shared visited set.
	ErrNilVisited = errors.New("floodfill: visited set is nil")
	// ErrLayerBounds is returned when a starting layer lies outside the
	// supplied LayerBounds.
	ErrLayerBounds = errors.New("floodfill: starting layer out of bounds")
)

// Vertical direction hints passed to a TriPredicate, describing how the
// queried cell was reached.
const (
	// SameLevel marks a cell reached by horizontal movement.
	SameLevel = 0
	// MovedUp marks a cell reached from the layer below.
	MovedUp = 1
	// MovedDown marks a cell reached from the layer above.
	MovedDown = -1
)

// Node constrains the coordinate types Fill4 can traverse: comparable
// (usable as a map key) and able to enumerate its four orthogonal
// neighbors. grid.Point satisfies Node[grid.Point].
type Node[P any] interface {
	comparable
	Neighbors4() [4]P
}

// Predicate reports whether a point should be filled.
type Predicate[P Node[P]] func(p P) bool

// TriPredicate reports whether a 3D cell should be filled. vertical is one
// of SameLevel, MovedUp, MovedDown.
type TriPredicate func(p grid.TriPoint, vertical int) bool

// TriVisitor acts on a cell accepted by a TriPredicate. It is invoked
// exactly once per accepted cell during a single fill.
type TriVisitor func(p grid.TriPoint)
