// Package grid defines the coordinate primitives shared by the floodgrid
// algorithm packages: 2D points, 3D tri-points, their unit direction
// offsets, and biased layer bounds for stacked z-levels.
//
// What:
//
//   - Point: integer (X,Y) coordinate with the four cardinal unit offsets.
//   - TriPoint: integer (X,Y,Z) coordinate with eight horizontal unit
//     offsets plus Up and Down.
//   - LayerBounds: the valid z-level range [-Depth, Height] and the bias
//     arithmetic mapping a signed z to a non-negative array index.
//
// Why:
//
//   - Traversal algorithms need only equality, hashing (map keys) and
//     offset addition from their coordinates; keeping those in one leaf
//     package lets any caller-side grid reuse them.
//   - Negative z-levels (basements, underwater layers) are common in game
//     maps; LayerBounds centralizes the index bias so no algorithm performs
//     unchecked signed indexing.
//
// All types are plain values: passed and stored by value, safe to copy,
// usable as map keys.
package grid
