package domain

import (
	"errors"
	"testing"
)

func TestComputeOutcomeTierBoundaries(t *testing.T) {
	cases := []struct {
		score, total int
		want         OutcomeTier
	}{
		{4, 4, TierPerfect},
		{3, 4, TierExcellent},
		{2, 4, TierGood},
		{1, 4, TierPoor},
		{0, 4, TierPoor},
		{8, 10, TierExcellent},
		{7, 10, TierGood},
		{3, 5, TierGood},
		{2, 5, TierPoor},
		{0, 0, TierPerfect},
	}
	for _, tc := range cases {
		if got := ComputeOutcomeTier(tc.score, tc.total); got != tc.want {
			t.Fatalf("tier(%d/%d) = %s, want %s", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestParseLabel(t *testing.T) {
	for raw, want := range map[string]Label{"Human": Human, " ai ": AI, "h": Human, "A": AI} {
		got, err := ParseLabel(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLabel(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseLabel("robot"); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("expected ErrInvalidGuess, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty(""); err != nil || d != Mixed {
		t.Fatalf("blank should be Mixed, got %q %v", d, err)
	}
	if d, err := ParseDifficulty("HARD"); err != nil || d != Hard {
		t.Fatalf("expected Hard, got %q %v", d, err)
	}
	if _, err := ParseDifficulty("extreme"); !errors.Is(err, ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}
