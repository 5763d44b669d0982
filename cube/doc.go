// Package cube implements the fixed-size piece-array model of a 3x3x3
// Rubik's cube: the Face and Move vocabulary, the Piece/Cube types, the
// cycle-based ApplyMove mutator, and an ASCII renderer.
//
// A Cube is two piece groups — 8 corners, 12 edges — each a permutation of
// its own index range together with an orientation. ApplyMove is the only
// mutator; every other operation (the PDB builder, the IDA* search) treats
// a Cube as a value it clones before mutating, which Go gives for free since
// Cube holds only fixed-size arrays.
//
//	c := cube.NewSolved()
//	c.ApplyMove(cube.Move{Face: cube.F, Coeff: 2})
//	clone := c // arrays copy by value; clone and c no longer alias
//	clone.ApplyMove(cube.Move{Face: cube.U, Coeff: 1})
//
// See github.com/guth0/HalfScramble/encode for the projected-state bijection
// consumed by the pattern-database builder, and
// github.com/guth0/HalfScramble/search for the IDA* traversal that drives
// ApplyMove along candidate paths.
package cube
