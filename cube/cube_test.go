package cube_test

import (
	"testing"

	"github.com/guth0/HalfScramble/cube"
)

func cornerOrientationSum(c cube.Cube) int {
	sum := 0
	for _, p := range c.Corners {
		sum += p.Ori
	}
	return sum % 3
}

func edgeOrientationSum(c cube.Cube) int {
	sum := 0
	for _, p := range c.Edges {
		sum += p.Ori
	}
	return sum % 2
}

func positionsArePermutation(t *testing.T, c cube.Cube) {
	t.Helper()
	var seenC [cube.NumCorners]bool
	for _, p := range c.Corners {
		if p.Pos < 0 || p.Pos >= cube.NumCorners || seenC[p.Pos] {
			t.Fatalf("corner positions are not a permutation: %+v", c.Corners)
		}
		seenC[p.Pos] = true
	}
	var seenE [cube.NumEdges]bool
	for _, p := range c.Edges {
		if p.Pos < 0 || p.Pos >= cube.NumEdges || seenE[p.Pos] {
			t.Fatalf("edge positions are not a permutation: %+v", c.Edges)
		}
		seenE[p.Pos] = true
	}
}

func TestNewSolvedIsSolved(t *testing.T) {
	c := cube.NewSolved()
	if !c.IsSolved() {
		t.Fatal("NewSolved is not solved")
	}
	if cornerOrientationSum(c) != 0 || edgeOrientationSum(c) != 0 {
		t.Fatal("solved cube violates orientation parity invariants")
	}
}

// TestApplyMove_EachMoveHasAnInverse checks that applying
// every one of the 18 moves, then its inverse (per scramble.Invert's rule:
// coeff -1<->1 swap, coeff 2 fixed), returns to solved.
func TestApplyMove_EachMoveHasAnInverse(t *testing.T) {
	inverseCoeff := map[int]int{-1: 1, 1: -1, 2: 2}
	for _, m := range cube.AllMoves {
		c := cube.NewSolved()
		c.ApplyMove(m)
		if c.IsSolved() {
			t.Fatalf("move %v left the cube solved; expected a change", m)
		}
		positionsArePermutation(t, c)
		if cornerOrientationSum(c) != 0 || edgeOrientationSum(c) != 0 {
			t.Fatalf("move %v violated orientation parity invariants", m)
		}

		inv := cube.Move{Face: m.Face, Coeff: inverseCoeff[m.Coeff]}
		c.ApplyMove(inv)
		if !c.IsSolved() {
			t.Fatalf("move %v followed by its inverse %v did not restore solved state", m, inv)
		}
	}
}

// TestApplyMove_QuarterTurnHasOrderFour checks the group-theoretic
// invariant ApplyMove's CCW/half-turn dispatch depends on: four repeated
// clockwise quarter turns of any single face return to solved.
func TestApplyMove_QuarterTurnHasOrderFour(t *testing.T) {
	for _, face := range cube.Faces {
		c := cube.NewSolved()
		for i := 0; i < 4; i++ {
			c.ApplyMove(cube.Move{Face: face, Coeff: 1})
		}
		if !c.IsSolved() {
			t.Fatalf("four quarter turns of %v did not return to solved", face)
		}
	}
}

// TestApplyMove_HalfTurnIsSelfInverse checks R2 == R2`: applying a half
// turn twice restores solved.
func TestApplyMove_HalfTurnIsSelfInverse(t *testing.T) {
	for _, face := range cube.Faces {
		c := cube.NewSolved()
		c.ApplyMove(cube.Move{Face: face, Coeff: 2})
		c.ApplyMove(cube.Move{Face: face, Coeff: 2})
		if !c.IsSolved() {
			t.Fatalf("two half turns of %v did not return to solved", face)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := cube.NewSolved()
	clone := c.Clone()
	clone.ApplyMove(cube.Move{Face: cube.U, Coeff: 1})

	if !c.IsSolved() {
		t.Fatal("mutating a clone mutated the original")
	}
	if clone.IsSolved() {
		t.Fatal("clone did not actually receive the move")
	}
}

func TestRender_ProducesNonEmptyNet(t *testing.T) {
	c := cube.NewSolved()
	out := c.Render()
	if len(out) == 0 {
		t.Fatal("Render produced empty output")
	}
	// Nine lines: 3 for U, 3 for the L/F/R/B belt, 3 for D.
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 9 {
		t.Fatalf("Render produced %d lines, want 9", lines)
	}
}
