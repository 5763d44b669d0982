package encode

import (
	"fmt"

	"github.com/guth0/HalfScramble/cube"
)

// Group selects which piece group of a cube.Cube a Projection draws from.
type Group int

const (
	GroupCorner Group = iota
	GroupEdge
)

// Projection names a contiguous slice [Lo, Hi) of one piece group and the
// orientation base of its pieces (3 for corners, 2 for edges). It is the
// unit the pattern-database builder and store operate on: the full corner
// group, or one of two overlapping eight-edge windows of the edge group
// split across two databases (spec
// section 4.2's ID1/ID2 split).
type Projection struct {
	Name  string
	Group Group
	Lo    int
	Hi    int
	Base  int
}

// K returns the number of pieces this projection covers.
func (p Projection) K() int {
	return p.Hi - p.Lo
}

// Size returns the number of distinct encoded indices: k! * base^(k-1).
func (p Projection) Size() int {
	k := p.K()
	return factorial(k) * intPow(p.Base, k-1)
}

// Select returns the slice of c's piece group that this projection covers.
// The returned slice aliases c's backing array.
func (p Projection) Select(c *cube.Cube) []cube.Piece {
	switch p.Group {
	case GroupCorner:
		return c.Corners[p.Lo:p.Hi]
	case GroupEdge:
		return c.Edges[p.Lo:p.Hi]
	default:
		panic(fmt.Sprintf("encode: unknown group %d", p.Group))
	}
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

func intPow(base, exp int) int {
	if exp <= 0 {
		return 1
	}
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
