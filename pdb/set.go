package pdb

import "github.com/guth0/HalfScramble/cube"

// Set composes several Tables into a single admissible heuristic by taking
// their maximum: each table is the exact distance to solve a relaxation of
// the cube, so their max is still a lower bound on the true distance, and
// a tighter one than any single table alone.
type Set []*Table

// Heuristic returns max_i table[i].Heuristic(c) across every table in s. An
// empty Set has heuristic zero everywhere, which is admissible but useless
// (equivalent to unguided breadth-first search); callers should always load
// at least one table.
func (s Set) Heuristic(c *cube.Cube) (int, error) {
	best := 0
	for _, t := range s {
		h, err := t.Heuristic(c)
		if err != nil {
			return 0, err
		}
		if h > best {
			best = h
		}
	}
	return best, nil
}
