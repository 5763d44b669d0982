package search

import (
	"context"
	"fmt"
	"math"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/pdb"
)

const infinity = math.MaxInt

// engine holds all search state for one Solve call, in the style of a
// dedicated search struct rather than closures over local variables: the
// path, the heuristic source, and cancellation state are all explicit
// fields instead of captured locals, which keeps the recursive search
// method easy to reason about and to test in isolation.
type engine struct {
	pdbs           pdb.Set
	forbiddenFirst cube.Move
	scrambleLen    int
	ctx            context.Context
	progress       func(int)

	path      []cube.Move
	cancelled bool
}

// heuristic queries the composite PDB source. An error here can only mean
// the caller handed Solve a cube with a corrupted piece-group invariant,
// since every cube this engine itself produces is a pure ApplyMove
// descendant of a valid input.
func (e *engine) heuristic(node *cube.Cube) int {
	h, err := e.pdbs.Heuristic(node)
	if err != nil {
		panic(fmt.Sprintf("search: heuristic lookup failed on a supposedly valid cube: %v", err))
	}
	return h
}

// cancelledNow checks ctx.Done() once. Unlike the branch-and-bound deadline
// check in the reference stack's tsp package, this check runs on every
// recursion entry rather than every Nth node: IDA*'s recursion depth is
// bounded by threshold (typically <= 20), so the channel select here never
// dominates the cost of a node.
func (e *engine) cancelledNow() bool {
	select {
	case <-e.ctx.Done():
		return true
	default:
		return false
	}
}

// search is the bounded depth-first search at the core of IDA*. It returns (true, f) when
// node is solved within threshold, or (false, t) with t the minimum
// f-value observed across pruned branches (t >= threshold unless every
// branch was eliminated by move pruning, in which case t stays infinity).
func (e *engine) search(node *cube.Cube, g, threshold int) (bool, int) {
	if e.cancelledNow() {
		e.cancelled = true
		return false, infinity
	}

	h := e.heuristic(node)
	f := g + h
	if f < e.scrambleLen {
		f = e.scrambleLen
	}
	if f > threshold {
		return false, f
	}
	if g >= e.scrambleLen && node.IsSolved() {
		return true, f
	}

	minCost := infinity
	depth := len(e.path)
	hasLast := depth > 0
	var lastFace cube.Face
	if hasLast {
		lastFace = e.path[depth-1].Face
	}

	for _, face := range cube.Faces {
		if hasLast && face == lastFace {
			continue // rule A: two consecutive turns of the same face collapse to one
		}
		if hasLast && face == cube.OppositeFace[lastFace] {
			continue // rule B: skip the face opposite the last one turned. Since
			// OppositeFace is an involution this prunes both orders of an
			// opposite-face pair (F then B, and B then F) identically.
		}

		for _, coeff := range cube.Coeffs {
			m := cube.Move{Face: face, Coeff: coeff}
			if depth == 0 && m == e.forbiddenFirst {
				continue // root pruning: never reopen the scramble's own inverse
			}

			child := node.Clone()
			child.ApplyMove(m)

			e.path = append(e.path, m)
			found, t := e.search(&child, g+1, threshold)
			if found {
				return true, t
			}
			e.path = e.path[:len(e.path)-1]

			if e.cancelled {
				return false, infinity
			}
			if t < minCost {
				minCost = t
			}
		}
	}

	return false, minCost
}

// Solve runs IDA* from cube to the solved state, returning a path of at
// least scrambleLen moves that never opens with forbiddenFirst, never
// repeats a face on consecutive moves, and never follows a move with its
// opposite face's move. The second return value reports whether a path
// was found; apart from cancellation through opts.Ctx (which also returns
// ctx.Err()), it is false only if the search space saturates without
// finding one, which is not observed in practice at the depths this
// solver operates at.
//
// Move-pruning rule B is symmetric: cube.OppositeFace is an involution
// (U<->D, R<->L, F<->B), so "current face == opposite(previous face)"
// fires for a previous/current pair (A, B) exactly when it fires for
// (B, A). Both F-then-B and B-then-F are pruned identically; there is no
// asymmetry to the rule as implemented.
func Solve(start *cube.Cube, forbiddenFirst cube.Move, pdbs pdb.Set, scrambleLen int, opts Options) ([]cube.Move, bool, error) {
	ctx := context.Background()
	if opts.Ctx != nil {
		ctx = opts.Ctx
	}

	e := &engine{
		pdbs:           pdbs,
		forbiddenFirst: forbiddenFirst,
		scrambleLen:    scrambleLen,
		ctx:            ctx,
	}

	node := start.Clone()
	threshold := e.heuristic(&node)
	if threshold < scrambleLen {
		threshold = scrambleLen
	}

	for {
		if opts.Progress != nil {
			opts.Progress(threshold)
		}

		found, next := e.search(&node, 0, threshold)
		if e.cancelled {
			return nil, false, ctx.Err()
		}
		if found {
			out := make([]cube.Move, len(e.path))
			copy(out, e.path)
			return out, true, nil
		}
		if next == infinity {
			return nil, false, nil
		}
		threshold = next
	}
}
