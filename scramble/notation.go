package scramble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guth0/HalfScramble/cube"
)

// ErrEmptyToken is returned by ParseMove for an empty or whitespace-only
// token.
var ErrEmptyToken = errors.New("scramble: empty move token")

// ErrUnknownFace is returned by ParseMove when a token's leading byte is
// not one of U, R, F, L, B, D.
var ErrUnknownFace = errors.New("scramble: unknown face letter")

// ErrUnknownSuffix is returned by ParseMove when a token has more than one
// trailing character, or a trailing character that isn't ` or 2.
var ErrUnknownSuffix = errors.New("scramble: unknown move suffix")

var faceByLetter = map[byte]cube.Face{
	'U': cube.U,
	'R': cube.R,
	'F': cube.F,
	'L': cube.L,
	'B': cube.B,
	'D': cube.D,
}

// FormatMove renders m using the external move-token notation. It is
// a thin wrapper over cube.Move.String, kept here so callers working with
// move notation need only import this package, not cube as well.
func FormatMove(m cube.Move) string {
	return m.String()
}

// FormatSequence renders a path as space-separated move tokens, the format
// printed by the solver CLI.
func FormatSequence(path []cube.Move) string {
	tokens := make([]string, len(path))
	for i, m := range path {
		tokens[i] = FormatMove(m)
	}
	return strings.Join(tokens, " ")
}

// ParseMove parses a single move token (e.g. "F2", "R`", "U") into a Move.
// This has no counterpart in original_source/src/scramble.rs, which only
// ever prints moves; it exists because the solver CLI must be able to
// round-trip a scramble it printed, and because tests construct scrambles
// from literal strings like "F2 U R2 B2".
func ParseMove(tok string) (cube.Move, error) {
	if strings.TrimSpace(tok) == "" {
		return cube.Move{}, ErrEmptyToken
	}

	face, ok := faceByLetter[tok[0]]
	if !ok {
		return cube.Move{}, fmt.Errorf("%w: %q", ErrUnknownFace, tok)
	}

	switch rest := tok[1:]; rest {
	case "":
		return cube.Move{Face: face, Coeff: 1}, nil
	case "`":
		return cube.Move{Face: face, Coeff: -1}, nil
	case "2":
		return cube.Move{Face: face, Coeff: 2}, nil
	default:
		return cube.Move{}, fmt.Errorf("%w: %q", ErrUnknownSuffix, tok)
	}
}

// ParseSequence parses a whitespace-separated string of move tokens.
func ParseSequence(s string) ([]cube.Move, error) {
	fields := strings.Fields(s)
	moves := make([]cube.Move, len(fields))
	for i, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("scramble: parsing move %d of %q: %w", i, s, err)
		}
		moves[i] = m
	}
	return moves, nil
}
