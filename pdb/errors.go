package pdb

import "errors"

// ErrSizeMismatch is returned by Open when a PDB file's byte count does not
// match its projection's expected size. Open wraps it with the offending
// path via pkg/errors.Wrapf.
var ErrSizeMismatch = errors.New("pdb: file size does not match projection size")

// ErrOutOfMemory is returned by Build when the depth table's length
// exceeds the runtime's allocation limit (see allocDepths). It is fatal:
// the caller has no recovery path short of a smaller projection or more
// memory.
var ErrOutOfMemory = errors.New("pdb: build ran out of memory")
