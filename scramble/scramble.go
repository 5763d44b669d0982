package scramble

import (
	"math/rand"

	"github.com/guth0/HalfScramble/cube"
)

// Generate produces a random scramble of n moves, rejecting immediate
// same-face repeats and the three-move opposite-face echo pattern (a move
// whose face is both the opposite of the previous move's face and equal to
// the move two steps back — e.g. F B F — which collapses to a shorter
// equivalent sequence). Ported from
// original_source/src/scramble.rs::generate_scramble.
func Generate(n int, rng *rand.Rand) []cube.Move {
	moves := make([]cube.Move, 0, n)
	for i := 0; i < n; i++ {
		mv := cube.AllMoves[rng.Intn(len(cube.AllMoves))]
		for (i > 0 && mv.Face == moves[i-1].Face) ||
			(i > 1 && mv.Face == cube.OppositeFace[moves[i-1].Face] && mv.Face == moves[i-2].Face) {
			mv = cube.AllMoves[rng.Intn(len(cube.AllMoves))]
		}
		moves = append(moves, mv)
	}
	return moves
}

// Invert returns the move that undoes m: a half turn (coeff 2) is its own
// inverse; a quarter turn's inverse flips its coefficient's sign. Ported
// from original_source/src/scramble.rs::invert_move.
func Invert(m cube.Move) cube.Move {
	if m.Coeff == 2 {
		return m
	}
	return cube.Move{Face: m.Face, Coeff: -m.Coeff}
}

// InvertPath returns the path that undoes path: each move inverted,
// applied in reverse order. Ported from
// original_source/src/scramble.rs::invert_path.
func InvertPath(path []cube.Move) []cube.Move {
	out := make([]cube.Move, len(path))
	for i, m := range path {
		out[len(path)-1-i] = Invert(m)
	}
	return out
}
