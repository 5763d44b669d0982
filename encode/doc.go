// Package encode implements the projected-state encoder: a bijection from a
// contiguous slice of one cube piece group onto a compact integer index,
// used by the pattern-database builder and store as the array index into a
// dense depth table.
//
// A Projection names which group (corners or edges), which contiguous
// index range within that group, and the orientation base of its pieces.
// Encode composes a Lehmer-code permutation rank with a mixed-radix
// orientation digit string:
//
//	index = permCode * base^(k-1) + orientCode
//
// where k = hi-lo. Decode is its inverse over the full index range
// [0, Projection.Size()) — it reconstructs a canonical representative
// projected state (positions are a permutation of the ranks 0..k-1) rather
// than real piece identities, which is all the bijection contract promises
// when lo > 0 (the piece values sitting in a projection's positions are
// themselves only known at runtime).
//
// For a projection that spans a whole group (CornerProjection) the encoding
// is a bijection on reachable states. For a sub-range of a group (the two
// edge projections) it is not: Encode keeps only the relative order of the
// positions, not which positions of the group are occupied, and it drops
// the last piece's orientation, which the group-wide parity invariant does
// not determine for a sub-range. Projected states that differ only in those
// respects share an index.
package encode
