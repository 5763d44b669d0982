// Package pdb builds, persists, and queries pattern databases: dense byte
// tables mapping every reachable projected cube state to the exact number
// of face turns needed to solve that projection alone.
//
// Build runs an exhaustive breadth-first search over full cubes, stamping
// each projected index with the first (smallest) depth at which the BFS
// reaches it. The result is an admissible heuristic for the full IDA*
// search in package search: solving a relaxation of the cube (only one
// piece group, or part of one) can never take more moves than solving the
// whole thing.
//
// Table.Save/Open round-trip the table through a raw, headerless byte
// format: no magic, no checksum, one byte per index. Set composes several
// open tables into a max-heuristic.
package pdb
