// Package search implements IDA* (iterative-deepening A*) over the cube's
// move graph: repeated bounded depth-first search with a threshold raised
// to the minimum pruned f-value on each failed pass, guided by a
// pdb.Set composite heuristic.
//
// Move order is fixed and observable: faces iterate [U,R,F,L,B,D], coeffs
// iterate [-1,+1,+2]. Two structural pruning rules eliminate redundant
// branches before they are explored: a same-face move never follows
// itself, and a move never follows its own opposite face's move. Because
// opposite-face pairing is an involution, that second rule is symmetric:
// it prunes both orders of an opposite-face pair equally (see the Solve
// doc comment).
package search
