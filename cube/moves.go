package cube

import "fmt"

// cornerMoveTable and edgeMoveTable give, for each face (in Face iota
// order U,R,F,L,B,D), the 4-cycle of position indices that a clockwise
// quarter turn of that face induces on the corner / edge group. Ported
// from original_source/src/cube.rs (CORNER_MOVE_TABLE, EDGE_MOVE_TABLE).
var cornerMoveTable = [6][4]int{
	U: {1, 5, 4, 0},
	R: {0, 4, 7, 3},
	F: {0, 3, 2, 1},
	L: {1, 2, 6, 5},
	B: {4, 5, 6, 7},
	D: {2, 3, 7, 6},
}

var edgeMoveTable = [6][4]int{
	U: {3, 2, 1, 0},
	R: {1, 5, 9, 4},
	F: {0, 4, 8, 7},
	L: {3, 7, 11, 6},
	B: {2, 6, 10, 5},
	D: {8, 9, 10, 11},
}

// cyclePieces rotates the pieces currently sitting at the four positions in
// posCycle one step forward along the cycle (pos[i] -> pos[(i+1)%4]) and
// returns the piece-array indices touched, in cycle order, so the caller
// can apply matching orientation deltas.
//
// Pieces are located by a linear scan over "which entry currently holds
// position p" (design note: inverted permutation lookup). N is at most 12
// here, so the O(N) scan per cycle slot is negligible.
func cyclePieces(pieces []Piece, posCycle [4]int) [4]int {
	var pieceCycle [4]int
	for i, pos := range posCycle {
		idx := -1
		for j, p := range pieces {
			if p.Pos == pos {
				idx = j
				break
			}
		}
		if idx < 0 {
			panic(fmt.Sprintf("cube: invariant violated, no piece holds position %d", pos))
		}
		pieceCycle[i] = idx
	}

	for i, idx := range pieceCycle {
		pieces[idx].Pos = posCycle[(i+1)%4]
	}

	return pieceCycle
}

// cornerRotation returns the orientation delta (mod 3) applied to the
// corner at cycle slot i of a single clockwise quarter turn of face.
// U and D never twist corners; F/L and B/R twist with opposite handedness.
// Ported from original_source/src/cube.rs::get_rotation.
func cornerRotation(face Face, i int) int {
	switch face {
	case F, L:
		return 1 + i%2
	case B, R:
		return 2 - i%2
	default: // U, D
		return 0
	}
}

// applyQuarterCW mutates c by one clockwise quarter turn of face. Every
// other turn (counter-clockwise, half) is expressed as repeated application
// of this single primitive (see ApplyMove): a quarter turn is a generator
// of order 4 in both its position cycle and its orientation deltas, so
// CW^3 == CW^-1 and CW^2 is the handedness-independent half turn, which
// keeps the whole move group consistent without a second, independently
// derived formula that could drift out of sync with this one.
func applyQuarterCW(c *Cube, face Face) {
	cornerCycle := cyclePieces(c.Corners[:], cornerMoveTable[face])
	for i, idx := range cornerCycle {
		c.Corners[idx].Ori = (c.Corners[idx].Ori + cornerRotation(face, i)) % 3
	}

	edgeCycle := cyclePieces(c.Edges[:], edgeMoveTable[face])
	if face == F || face == B {
		for _, idx := range edgeCycle {
			c.Edges[idx].Ori = (c.Edges[idx].Ori + 1) % 2
		}
	}
}

// ApplyMove mutates c by applying m. A quarter turn (coeff +1) is the
// primitive; coeff -1 applies it three times (its inverse, since a single
// face's quarter turn has order 4) and coeff +2 applies it twice, which is
// the unique rotation whose result does not depend on handedness
// (R2 == R2` for any choice of handedness). It panics if m.Coeff is not
// -1, +1 or +2, or if the piece arrays violate the position-permutation
// invariant; both are programming bugs, not runtime conditions, and
// neither can happen through normal use of this method with the moves in
// AllMoves.
func (c *Cube) ApplyMove(m Move) {
	var reps int
	switch m.Coeff {
	case 1:
		reps = 1
	case 2:
		reps = 2
	case -1:
		reps = 3
	default:
		panic(fmt.Sprintf("cube: invalid move coefficient %d", m.Coeff))
	}
	for i := 0; i < reps; i++ {
		applyQuarterCW(c, m.Face)
	}
}

// AllMoves lists all 18 legal moves in the fixed face-then-coefficient
// iteration order ([U,R,F,L,B,D] x [-1,+1,+2]) used by the PDB builder.
var AllMoves = func() [18]Move {
	var moves [18]Move
	i := 0
	for _, face := range Faces {
		for _, coeff := range Coeffs {
			moves[i] = Move{Face: face, Coeff: coeff}
			i++
		}
	}
	return moves
}()
