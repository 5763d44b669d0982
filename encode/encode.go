package encode

import (
	"errors"
	"fmt"

	"github.com/guth0/HalfScramble/cube"
)

// ErrBadProjection reports a structurally invalid Projection: not the kind
// of thing a caller recovers from, since projections are compile-time
// constants in this package, not user input.
var ErrBadProjection = errors.New("encode: projection shape invalid")

func (p Projection) validate() error {
	if p.Lo < 0 || p.Hi <= p.Lo || p.Base < 2 {
		return fmt.Errorf("%w: lo=%d hi=%d base=%d", ErrBadProjection, p.Lo, p.Hi, p.Base)
	}
	return nil
}

// Encode maps c's pieces within p's range to a dense index in
// [0, p.Size()). It is total over cubes that satisfy the position and
// orientation invariants of package cube; a violation of those invariants
// is a bug in the caller, and Encode panics rather than silently returning
// a wrong index.
func (p Projection) Encode(c *cube.Cube) (int, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	return encodePieces(p.Select(c), p.Base), nil
}

// encodePieces implements the generic projected-state encoder: a
// Lehmer-code permutation rank combined with a mixed-radix orientation
// digit string. pieces need not be a permutation of [0, k) when
// the projection's Lo is greater than zero; only relative order among the
// pieces present matters for the permutation rank.
func encodePieces(pieces []cube.Piece, base int) int {
	k := len(pieces)

	for i, p := range pieces {
		if p.Ori < 0 || p.Ori >= base {
			panic(fmt.Sprintf("encode: invariant violated, piece %d has orientation %d outside [0, %d)", i, p.Ori, base))
		}
	}

	orientCode := 0
	for i := 0; i < k-1; i++ {
		orientCode = orientCode*base + pieces[i].Ori
	}

	permCode := 0
	for i := 0; i < k; i++ {
		rank := 0
		for j := i + 1; j < k; j++ {
			if pieces[j].Pos == pieces[i].Pos {
				panic(fmt.Sprintf("encode: invariant violated, pieces %d and %d share position %d", i, j, pieces[i].Pos))
			}
			if pieces[j].Pos < pieces[i].Pos {
				rank++
			}
		}
		permCode += rank * factorial(k-1-i)
	}

	return permCode*intPow(base, k-1) + orientCode
}

// Decode is Encode's inverse over the full range [0, p.Size()). It
// reconstructs a canonical representative projected state: positions are
// the ranks 0..k-1 in the order Encode's Lehmer code describes, and the
// final piece's orientation is filled in so that the k decoded
// orientations sum to a multiple of base (for a projection spanning the
// whole group this is the parity invariant every reachable cube state
// holds). Decode does not recover true piece identities for a
// sub-range projection (lo > 0); it recovers the equivalence class Encode
// actually distinguishes, which is exactly what the bijectivity contract
// requires.
func (p Projection) Decode(index int) (positions []int, orientations []int, err error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= p.Size() {
		return nil, nil, fmt.Errorf("encode: index %d out of range [0, %d)", index, p.Size())
	}

	k := p.K()
	base := p.Base

	radix := intPow(base, k-1)
	permCode := index / radix
	orientCode := index % radix

	orientations = make([]int, k)
	sum := 0
	for i := k - 2; i >= 0; i-- {
		orientations[i] = orientCode % base
		orientCode /= base
		sum += orientations[i]
	}
	orientations[k-1] = ((base - sum%base) % base)

	positions = make([]int, k)
	available := make([]int, k)
	for i := range available {
		available[i] = i
	}
	for i := 0; i < k; i++ {
		radixI := factorial(k - 1 - i)
		rank := permCode / radixI
		permCode %= radixI
		positions[i] = available[rank]
		available = append(available[:rank], available[rank+1:]...)
	}

	return positions, orientations, nil
}
