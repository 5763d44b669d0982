package scramble_test

import (
	"math/rand"
	"testing"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/scramble"
)

func TestGenerate_Length(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	moves := scramble.Generate(15, rng)
	if len(moves) != 15 {
		t.Fatalf("Generate(15) returned %d moves", len(moves))
	}
}

func TestGenerate_NoSameFaceRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		moves := scramble.Generate(20, rng)
		for i := 1; i < len(moves); i++ {
			if moves[i].Face == moves[i-1].Face {
				t.Fatalf("trial %d: adjacent same-face moves at %d: %v %v", trial, i, moves[i-1], moves[i])
			}
		}
	}
}

func TestGenerate_NoOppositeFaceEcho(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		moves := scramble.Generate(20, rng)
		for i := 2; i < len(moves); i++ {
			if moves[i].Face == cube.OppositeFace[moves[i-1].Face] && moves[i].Face == moves[i-2].Face {
				t.Fatalf("trial %d: opposite-face echo at %d: %v %v %v", trial, i, moves[i-2], moves[i-1], moves[i])
			}
		}
	}
}

func TestInvert_HalfTurnIsSelfInverse(t *testing.T) {
	m := cube.Move{Face: cube.R, Coeff: 2}
	if got := scramble.Invert(m); got != m {
		t.Fatalf("Invert(R2) = %v, want R2", got)
	}
}

func TestInvert_QuarterTurnsSwap(t *testing.T) {
	cases := []struct{ in, want cube.Move }{
		{cube.Move{Face: cube.U, Coeff: 1}, cube.Move{Face: cube.U, Coeff: -1}},
		{cube.Move{Face: cube.F, Coeff: -1}, cube.Move{Face: cube.F, Coeff: 1}},
	}
	for _, tc := range cases {
		if got := scramble.Invert(tc.in); got != tc.want {
			t.Fatalf("Invert(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInvertPath_UndoesApplication(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	path := scramble.Generate(10, rng)

	c := cube.NewSolved()
	for _, m := range path {
		c.ApplyMove(m)
	}
	for _, m := range scramble.InvertPath(path) {
		c.ApplyMove(m)
	}
	if !c.IsSolved() {
		t.Fatal("applying a path then its inverted path did not restore solved")
	}
}

func TestFormatMove(t *testing.T) {
	cases := []struct {
		m    cube.Move
		want string
	}{
		{cube.Move{Face: cube.F, Coeff: 1}, "F"},
		{cube.Move{Face: cube.F, Coeff: -1}, "F`"},
		{cube.Move{Face: cube.F, Coeff: 2}, "F2"},
	}
	for _, tc := range cases {
		if got := scramble.FormatMove(tc.m); got != tc.want {
			t.Fatalf("FormatMove(%v) = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestParseMove_RoundTripsWithFormatMove(t *testing.T) {
	for _, m := range cube.AllMoves {
		tok := scramble.FormatMove(m)
		got, err := scramble.ParseMove(tok)
		if err != nil {
			t.Fatalf("ParseMove(%q) returned error: %v", tok, err)
		}
		if got != m {
			t.Fatalf("ParseMove(FormatMove(%v)) = %v", m, got)
		}
	}
}

func TestParseMove_Errors(t *testing.T) {
	cases := []string{"", "X", "F``", "F3"}
	for _, tok := range cases {
		if _, err := scramble.ParseMove(tok); err == nil {
			t.Fatalf("ParseMove(%q) did not return an error", tok)
		}
	}
}

func TestParseSequence_RoundTripsWithFormatSequence(t *testing.T) {
	const s = "F2 U R2 B2"
	moves, err := scramble.ParseSequence(s)
	if err != nil {
		t.Fatalf("ParseSequence(%q) returned error: %v", s, err)
	}
	if got := scramble.FormatSequence(moves); got != s {
		t.Fatalf("FormatSequence(ParseSequence(%q)) = %q", s, got)
	}
}
