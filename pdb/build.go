package pdb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/encode"
)

// BuildOptions configures Build. If opts is the zero value, Build runs to
// completion on a background context with no progress reporting.
type BuildOptions struct {
	// Ctx is optional. If non-nil, the BFS aborts when ctx.Done() fires.
	Ctx context.Context

	// Progress(scanned, total), if non-nil, is called periodically as the
	// BFS drains its queue. scanned counts popped (not enqueued) cubes;
	// total is the projection's index space size, an upper bound on the
	// number of distinct projected states (not on the number of full
	// cubes scanned, since several full cubes can share a projection).
	Progress func(scanned, total int)
}

// allocDepths allocates the depth table, converting the runtime panic a
// `make` raises when the requested length is negative or exceeds the
// runtime's allocation limit into ErrOutOfMemory. An allocation within that
// limit that the system cannot satisfy is a fatal runtime error in Go, not
// a panic, so it still ends the process.
func allocDepths(size int) (depths []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			depths = nil
			err = errors.Wrapf(ErrOutOfMemory, "pdb: allocating %d-byte depth table: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}

// Build runs an exhaustive BFS: starting from the solved cube, it explores
// all 18 moves from each frontier cube, stamping every projected index it
// first reaches with the current BFS depth. The queue holds full cubes
// rather than projected indices — simpler, and the only cost is a larger
// transient queue.
func Build(proj encode.Projection, opts BuildOptions) (*Table, error) {
	ctx := context.Background()
	if opts.Ctx != nil {
		ctx = opts.Ctx
	}

	size := proj.Size()
	depths, err := allocDepths(size)
	if err != nil {
		return nil, err
	}
	for i := range depths {
		depths[i] = unreached
	}

	solved := cube.NewSolved()
	startIndex, err := proj.Encode(&solved)
	if err != nil {
		return nil, err
	}
	depths[startIndex] = 0

	queue := make([]cube.Cube, 0, 1024)
	queue = append(queue, solved)

	scanned := 0
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		c := queue[0]
		queue = queue[1:]

		parentIndex, err := proj.Encode(&c)
		if err != nil {
			return nil, err
		}
		depth := depths[parentIndex]

		for _, m := range cube.AllMoves {
			child := c
			child.ApplyMove(m)

			childIndex, err := proj.Encode(&child)
			if err != nil {
				return nil, err
			}
			if depths[childIndex] == unreached {
				depths[childIndex] = depth + 1
				queue = append(queue, child)
			}
		}

		scanned++
		if opts.Progress != nil && scanned&0xFFFF == 0 {
			opts.Progress(scanned, size)
		}
	}

	if opts.Progress != nil {
		opts.Progress(scanned, size)
	}

	return &Table{Proj: proj, Depths: depths}, nil
}
