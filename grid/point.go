package grid

// Point is an integer coordinate on a single 2D layer.
// The zero value is the origin.
type Point struct {
	X, Y int
}

// Cardinal unit offsets. Y grows southward, matching row-major grids.
var (
	North = Point{0, -1}
	South = Point{0, 1}
	East  = Point{1, 0}
	West  = Point{-1, 0}
)

// Add returns the component-wise sum p+q.
// Complexity: O(1).
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Neighbors4 returns the four orthogonally adjacent points in
// N, E, S, W order.
// Complexity: O(1).
func (p Point) Neighbors4() [4]Point {
	return [4]Point{
		p.Add(North),
		p.Add(East),
		p.Add(South),
		p.Add(West),
	}
}

// TriPoint is an integer coordinate in a stack of 2D layers.
// Z selects the layer; negative values address layers below the
// reference layer.
type TriPoint struct {
	X, Y, Z int
}

// Vertical unit offsets between layers.
var (
	Up   = TriPoint{0, 0, 1}
	Down = TriPoint{0, 0, -1}
)

// HorizontalOffsets lists the eight same-layer unit offsets,
// clockwise from north.
var HorizontalOffsets = [8]TriPoint{
	{0, -1, 0},
	{1, -1, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{-1, 1, 0},
	{-1, 0, 0},
	{-1, -1, 0},
}

// Add returns the component-wise sum p+q.
// Complexity: O(1).
func (p TriPoint) Add(q TriPoint) TriPoint {
	return TriPoint{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Above returns the cell directly above p.
func (p TriPoint) Above() TriPoint { return p.Add(Up) }

// Below returns the cell directly below p.
func (p TriPoint) Below() TriPoint { return p.Add(Down) }

// HorizontalNeighbors returns the eight same-layer neighbors of p,
// clockwise from north.
// Complexity: O(1).
func (p TriPoint) HorizontalNeighbors() [8]TriPoint {
	var out [8]TriPoint
	for i, d := range HorizontalOffsets {
		out[i] = p.Add(d)
	}
	return out
}

// Flat projects p onto its layer, dropping Z.
func (p TriPoint) Flat() Point { return Point{p.X, p.Y} }
