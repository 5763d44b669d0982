package pdb

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/encode"
)

// unreached is the sentinel byte marking a projected index the builder has
// not yet stamped: the maximum representable value of the chosen integer
// type rather than a value derived from bit arithmetic that could silently
// under-represent it; for a byte table that maximum is 0xFF.
const unreached byte = 0xFF

// Table is a built or loaded pattern database: a dense byte array indexed
// by the encoded value of one projection, holding the exact BFS depth to
// solve that projection. After Open or a completed Build, a Table's bytes
// are never mutated.
type Table struct {
	Proj   encode.Projection
	Depths []byte
}

// Heuristic returns the exact depth to solve c's projection, i.e. the
// lower bound on moves remaining that t contributes to the composite
// heuristic.
func (t *Table) Heuristic(c *cube.Cube) (int, error) {
	index, err := t.Proj.Encode(c)
	if err != nil {
		return 0, errors.Wrapf(err, "pdb: encode for %s projection", t.Proj.Name)
	}
	if index < 0 || index >= len(t.Depths) {
		panic(fmt.Sprintf("pdb: encoder index %d out of range [0, %d) for %s projection", index, len(t.Depths), t.Proj.Name))
	}
	return int(t.Depths[index]), nil
}

// Save writes t's bytes verbatim to path: a single contiguous stream of
// t.Proj.Size() unsigned bytes, no header, no magic, no checksum.
func (t *Table) Save(path string) error {
	if err := os.WriteFile(path, t.Depths, 0o644); err != nil {
		return errors.Wrapf(err, "pdb: writing %s", path)
	}
	return nil
}

// Open reads the raw byte file at path into a Table bound to proj. It fails
// if the file's size is not exactly proj.Size() bytes, since a raw headerless
// file carries no self-describing size or checksum to validate against;
// anything beyond that size check is the caller's responsibility.
func Open(path string, proj encode.Projection) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pdb: opening %s (rebuild it with cmd/buildpdb)", path)
	}
	want := proj.Size()
	if len(data) != want {
		return nil, errors.Wrapf(ErrSizeMismatch, "pdb: %s has %d bytes, want %d for %s projection (rebuild it with cmd/buildpdb)", path, len(data), want, proj.Name)
	}
	return &Table{Proj: proj, Depths: data}, nil
}
