// Package halfscramble rewrites a short Rubik's-cube scramble as a
// different move sequence that reaches the same scrambled position.
//
// What is HalfScramble?
//
//	A pattern-database-driven IDA* solver that treats "find an alternative
//	scramble" as "find any solution of at least the scramble's length to
//	the already-scrambled cube":
//
//	  - Cube model: fixed-size corner/edge piece arrays, 18 legal moves
//	  - Pattern databases: exhaustive BFS over projected sub-states,
//	    persisted as dense byte tables and combined into a max-heuristic
//	  - IDA* search: iterative-deepening depth-first search with
//	    deterministic move ordering and structural pruning
//
// Why this shape?
//
//   - Admissible   — every PDB is an exact distance on a relaxation of the
//     cube, so their maximum never overestimates the true distance
//   - Deterministic — fixed face and coefficient iteration order makes
//     solve output reproducible byte-for-byte given the same input
//   - No shortcuts  — out of scope are God's-number optimality, streaming
//     PDBs from disk, and symmetry reduction; see SPEC_FULL.md
//
// Everything is organized under dedicated subpackages:
//
//	cube/      — piece/cube/move types, ApplyMove, IsSolved, ASCII rendering
//	encode/    — bijective projected-state encoder/decoder (Lehmer code)
//	pdb/       — PDB builder, byte-file store, composite heuristic
//	search/    — the IDA* search itself
//	scramble/  — scramble generation, move inversion, move-token notation
//	cmd/buildpdb/ — builds one of the three canonical PDBs to data/
//	cmd/solve/    — generates a scramble and prints an alternative solution
//
// Building a database and solving a scramble from the command line:
//
//	go run ./cmd/buildpdb 1
//	go run ./cmd/buildpdb 2
//	go run ./cmd/buildpdb 3
//	go run ./cmd/solve 12
package halfscramble
