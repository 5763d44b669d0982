package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/pdb"
	"github.com/guth0/HalfScramble/search"
)

func contextWithImmediateCancel() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx, cancel
}

// SolveSuite covers a handful of seed scenarios and the general solver
// properties, against an empty pdb.Set (heuristic always
// zero). Admissibility holds trivially with no tables loaded; the scrambles
// used here are short enough that the unguided search still completes
// quickly, and using no PDBs keeps these tests independent of any built
// PDB file on disk.
type SolveSuite struct {
	suite.Suite
}

func applyAll(c *cube.Cube, moves []cube.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

func assertSolvesCube(t *testing.T, scrambleMoves, path []cube.Move) {
	t.Helper()
	c := cube.NewSolved()
	applyAll(&c, scrambleMoves)
	applyAll(&c, path)
	require.True(t, c.IsSolved(), "applying the solution path did not reach solved")
}

func assertCanonicalOrdering(t *testing.T, path []cube.Move) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		require.NotEqual(t, path[i].Face, path[i+1].Face, "adjacent same-face moves at %d,%d", i, i+1)
		require.NotEqual(t, cube.OppositeFace[path[i].Face], path[i+1].Face, "opposite-face rule violated at %d,%d", i, i+1)
	}
}

// TestSolvedCubeWithZeroScrambleLen is seed scenario 1.
func (s *SolveSuite) TestSolvedCubeWithZeroScrambleLen() {
	c := cube.NewSolved()
	path, found, err := search.Solve(&c, cube.Move{}, pdb.Set{}, 0, search.Options{})
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.Empty(s.T(), path)
}

// TestF2Scramble is seed scenario 2.
func (s *SolveSuite) TestF2Scramble() {
	scramble := []cube.Move{{Face: cube.F, Coeff: 2}}
	c := cube.NewSolved()
	applyAll(&c, scramble)

	forbiddenFirst := cube.Move{Face: cube.F, Coeff: 2} // inverse of F2 is F2
	path, found, err := search.Solve(&c, forbiddenFirst, pdb.Set{}, len(scramble), search.Options{})
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.GreaterOrEqual(s.T(), len(path), 1)
	require.NotEqual(s.T(), forbiddenFirst, path[0])
	assertSolvesCube(s.T(), scramble, path)
	assertCanonicalOrdering(s.T(), path)
}

// TestFourMoveScramble is seed scenario 3.
func (s *SolveSuite) TestFourMoveScramble() {
	scramble := []cube.Move{
		{Face: cube.F, Coeff: 2},
		{Face: cube.U, Coeff: 1},
		{Face: cube.R, Coeff: 2},
		{Face: cube.B, Coeff: 2},
	}
	c := cube.NewSolved()
	applyAll(&c, scramble)

	forbiddenFirst := cube.Move{Face: cube.B, Coeff: 2} // inverse of the scramble's last move, B2
	path, found, err := search.Solve(&c, forbiddenFirst, pdb.Set{}, len(scramble), search.Options{})
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	require.Len(s.T(), path, len(scramble))
	require.NotEqual(s.T(), cube.Move{Face: cube.B, Coeff: 2}, path[0])
	assertSolvesCube(s.T(), scramble, path)
	assertCanonicalOrdering(s.T(), path)
}

// TestDeterminism is seed scenario 6.
func (s *SolveSuite) TestDeterminism() {
	scramble := []cube.Move{
		{Face: cube.R, Coeff: 1},
		{Face: cube.U, Coeff: -1},
		{Face: cube.F, Coeff: 2},
	}

	run := func() []cube.Move {
		c := cube.NewSolved()
		applyAll(&c, scramble)
		path, found, err := search.Solve(&c, cube.Move{Face: cube.F, Coeff: 2}, pdb.Set{}, len(scramble), search.Options{})
		require.NoError(s.T(), err)
		require.True(s.T(), found)
		return path
	}

	first := run()
	second := run()
	require.Equal(s.T(), first, second)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolve_ProgressCallbackFiresAtLeastOnce(t *testing.T) {
	c := cube.NewSolved()
	c.ApplyMove(cube.Move{Face: cube.R, Coeff: 2})

	calls := 0
	_, found, err := search.Solve(&c, cube.Move{Face: cube.R, Coeff: 2}, pdb.Set{}, 1, search.Options{
		Progress: func(threshold int) { calls++ },
	})
	require.NoError(t, err)
	require.True(t, found)
	require.Greater(t, calls, 0)
}

func TestSolve_ContextCancellationIsReported(t *testing.T) {
	ctx, cancel := contextWithImmediateCancel()
	defer cancel()

	c := cube.NewSolved()
	c.ApplyMove(cube.Move{Face: cube.R, Coeff: 2})
	c.ApplyMove(cube.Move{Face: cube.U, Coeff: 1})
	c.ApplyMove(cube.Move{Face: cube.F, Coeff: -1})

	_, found, err := search.Solve(&c, cube.Move{}, pdb.Set{}, 3, search.Options{Ctx: ctx})
	require.Error(t, err)
	require.False(t, found)
}
