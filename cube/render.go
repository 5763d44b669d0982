package cube

import "strings"

// cornerColors and edgeColors give the three / two sticker colors of each
// corner / edge piece, in solved-orientation order. Ported from
// original_source/src/cube.rs (CORNER_COLORS, EDGE_COLORS). The letters are
// the standard Western color scheme: White/Yellow, Green/Blue, Red/Orange.
var cornerColors = [NumCorners]string{
	"WRG", "WGO", "YOG", "YGR", "WBR", "WOB", "YBO", "YRB",
}

var edgeColors = [NumEdges]string{
	"WG", "WR", "WB", "WO", "GR", "BR", "BO", "GO", "YG", "YR", "YB", "YO",
}

// sticker names a single square on the unfolded cube net: a face and a
// (row, col) coordinate within that face's 3x3 grid.
type sticker struct {
	face Face
	row  int
	col  int
}

// cornerTable and edgeTable give, for each position index, the stickers on
// the net that belong to the piece currently sitting there. Ported from
// original_source/src/cube.rs (CORNER_TABLE, EDGE_TABLE).
var cornerTable = [NumCorners][3]sticker{
	{{U, 2, 2}, {R, 0, 0}, {F, 0, 2}},
	{{U, 2, 0}, {F, 0, 0}, {L, 0, 2}},
	{{D, 0, 0}, {L, 2, 2}, {F, 2, 0}},
	{{D, 0, 2}, {F, 2, 2}, {R, 2, 0}},
	{{U, 0, 2}, {B, 0, 0}, {R, 0, 2}},
	{{U, 0, 0}, {L, 0, 0}, {B, 0, 2}},
	{{D, 2, 0}, {B, 2, 2}, {L, 2, 0}},
	{{D, 2, 2}, {R, 2, 2}, {B, 2, 0}},
}

var edgeTable = [NumEdges][2]sticker{
	{{U, 2, 1}, {F, 0, 1}},
	{{U, 1, 2}, {R, 0, 1}},
	{{U, 0, 1}, {B, 0, 1}},
	{{U, 1, 0}, {L, 0, 1}},
	{{F, 1, 2}, {R, 1, 0}},
	{{B, 1, 0}, {R, 1, 2}},
	{{B, 1, 2}, {L, 1, 0}},
	{{F, 1, 0}, {L, 1, 2}},
	{{D, 0, 1}, {F, 2, 1}},
	{{D, 1, 2}, {R, 2, 1}},
	{{D, 2, 1}, {B, 2, 1}},
	{{D, 1, 0}, {L, 2, 1}},
}

// netState is the six 3x3 sticker faces of the unfolded cube net, indexed
// by Face then [row][col].
type netState [6][3][3]byte

// fillState reconstructs the sticker net from c's piece arrays. Ported from
// original_source/src/cube.rs::fill_state.
func fillState(c *Cube) netState {
	var state netState
	for f := range state {
		for r := 0; r < 3; r++ {
			state[f][r] = [3]byte{' ', ' ', ' '}
		}
	}

	// Centers never move.
	state[U][1][1] = 'W'
	state[R][1][1] = 'R'
	state[F][1][1] = 'G'
	state[D][1][1] = 'Y'
	state[L][1][1] = 'O'
	state[B][1][1] = 'B'

	for pos := 0; pos < NumCorners; pos++ {
		index := -1
		for j, p := range c.Corners {
			if p.Pos == pos {
				index = j
				break
			}
		}
		if index < 0 {
			panic("cube: invariant violated, no corner holds position")
		}
		colors := cornerColors[index]
		ori := c.Corners[index].Ori
		for i, s := range cornerTable[pos] {
			state[s.face][s.row][s.col] = colors[(i+ori)%3]
		}
	}

	for pos := 0; pos < NumEdges; pos++ {
		index := -1
		for j, p := range c.Edges {
			if p.Pos == pos {
				index = j
				break
			}
		}
		if index < 0 {
			panic("cube: invariant violated, no edge holds position")
		}
		colors := edgeColors[index]
		ori := c.Edges[index].Ori
		for i, s := range edgeTable[pos] {
			state[s.face][s.row][s.col] = colors[(i+ori)%2]
		}
	}

	return state
}

// Render draws the cube as an unfolded net: the U face on top, L/F/R/B
// across the middle, D face on the bottom. Ported from
// original_source/src/cube.rs::print_state, adapted to build a string
// instead of writing directly to stdout.
func (c *Cube) Render() string {
	state := fillState(c)

	var b strings.Builder
	rowLine := func(f Face, r int) string {
		row := state[f][r]
		return string(row[:])
	}

	for r := 0; r < 3; r++ {
		b.WriteString("   ")
		b.WriteString(rowLine(U, r))
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString(rowLine(L, r))
		b.WriteString(rowLine(F, r))
		b.WriteString(rowLine(R, r))
		b.WriteString(rowLine(B, r))
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString("   ")
		b.WriteString(rowLine(D, r))
		if r < 2 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
