package cube

// Face identifies one of the six faces of the cube. The iota order
// (U, R, F, L, B, D) is load-bearing: it is the fixed face-iteration order
// used by the PDB builder and by the IDA* search, and it indexes directly
// into the move tables in moves.go and the opposite-face table below.
type Face uint8

const (
	U Face = iota
	R
	F
	L
	B
	D
)

// faceNames maps a Face to its single-letter notation token.
var faceNames = [6]string{"U", "R", "F", "L", "B", "D"}

// String returns the single-letter face notation.
func (f Face) String() string {
	if int(f) >= len(faceNames) {
		return "?"
	}
	return faceNames[f]
}

// OppositeFace maps each face to the face on the opposite side of the cube:
// U<->D, R<->L, F<->B. Used by the IDA* search's move-pruning rule B.
var OppositeFace = [6]Face{D, L, B, R, F, U}

// Faces lists all six faces in the fixed iteration order used throughout
// the builder and the search.
var Faces = [6]Face{U, R, F, L, B, D}

// Coeffs lists the three legal turn coefficients in the fixed iteration
// order used by the search: quarter CCW, quarter CW, half turn.
var Coeffs = [3]int{-1, 1, 2}

// Move is a single face turn: a face and a coefficient in {-1, +1, +2}.
type Move struct {
	Face  Face
	Coeff int
}

// String renders a Move using the external notation: a face letter
// optionally followed by ` (coeff -1) or 2 (coeff +2); a bare letter means
// coeff +1.
func (m Move) String() string {
	switch m.Coeff {
	case -1:
		return m.Face.String() + "`"
	case 2:
		return m.Face.String() + "2"
	default:
		return m.Face.String()
	}
}

// Piece is one cubie: its current position index within its group, and its
// orientation relative to a solved reference. Corners use orientation base
// 3, edges use orientation base 2.
type Piece struct {
	Pos int
	Ori int
}

// NumCorners and NumEdges are the fixed piece-group sizes for a 3x3x3 cube.
const (
	NumCorners = 8
	NumEdges   = 12
)

// Cube is a pair of piece groups. It is a plain value type: copying a Cube
// (by assignment, by passing by value, or via Clone) deep-copies both piece
// arrays because Go arrays (unlike slices) are value types. The solver
// relies on exactly this property instead of an explicit deep-copy routine.
type Cube struct {
	Corners [NumCorners]Piece
	Edges   [NumEdges]Piece
}

// NewSolved constructs a solved cube: every piece at position i, orientation 0.
func NewSolved() Cube {
	var c Cube
	for i := range c.Corners {
		c.Corners[i] = Piece{Pos: i, Ori: 0}
	}
	for i := range c.Edges {
		c.Edges[i] = Piece{Pos: i, Ori: 0}
	}
	return c
}

// Clone returns an independent copy of c. Because Cube holds only fixed-size
// arrays, this is equivalent to (and exists mainly for readability at call
// sites that want to make the copy explicit, e.g. in the search engine).
func (c Cube) Clone() Cube {
	return c
}

// IsSolved reports whether every corner and edge sits at its home position
// with zero orientation.
func (c *Cube) IsSolved() bool {
	for i, p := range c.Corners {
		if p.Pos != i || p.Ori != 0 {
			return false
		}
	}
	for i, p := range c.Edges {
		if p.Pos != i || p.Ori != 0 {
			return false
		}
	}
	return true
}
