package search

import "context"

// Options configures Solve. The zero value runs to completion on a
// background context with no progress reporting.
type Options struct {
	// Ctx is optional. If non-nil, Solve aborts (returning ctx.Err()) the
	// next time the bounded DFS checks for cancellation at a recursion
	// entry. Correctness does not depend on this: it is a pure early-exit.
	Ctx context.Context

	// Progress(threshold), if non-nil, is called once before each bounded
	// DFS pass, mirroring the original's per-iteration threshold log.
	Progress func(threshold int)
}
