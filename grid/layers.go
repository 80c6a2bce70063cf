package grid

// LayerBounds describes a stack of 2D layers addressed by signed z-levels.
// Valid levels run from -Depth up to Height inclusive; Depth layers lie
// below the reference layer z=0 and Height layers above it.
//
// Index maps a signed level onto [0, Layers()) so per-layer state can live
// in an ordinary slice without signed-array tricks. Callers must gate every
// Index call on Contains; LayerBounds itself never panics on out-of-range
// input, it just reports it.
type LayerBounds struct {
	// Depth is the number of layers below the reference layer (≥ 0).
	Depth int
	// Height is the number of layers above the reference layer (≥ 0).
	Height int
}

// Layers returns the total number of layers in the stack.
// Complexity: O(1).
func (lb LayerBounds) Layers() int {
	return lb.Depth + lb.Height + 1
}

// Contains reports whether z is a valid layer level.
// Complexity: O(1).
func (lb LayerBounds) Contains(z int) bool {
	return z >= -lb.Depth && z <= lb.Height
}

// Index maps a valid layer level to its biased slice index z+Depth.
// The result is meaningful only when Contains(z) is true.
// Complexity: O(1).
func (lb LayerBounds) Index(z int) int {
	return z + lb.Depth
}

// Top returns the highest valid layer level.
func (lb LayerBounds) Top() int { return lb.Height }

// Bottom returns the lowest valid layer level.
func (lb LayerBounds) Bottom() int { return -lb.Depth }
