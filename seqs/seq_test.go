package seqs_test

import (
	"slices"
	"testing"

	"seqpack/seqs"
)

func TestRange(t *testing.T) {
	t.Run("Forward", func(t *testing.T) {
		got := slices.Collect(seqs.Range(0, 5, 1))
		if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
			t.Errorf("Range forward mismatch: got %v", got)
		}
	})

	t.Run("Backward", func(t *testing.T) {
		got := slices.Collect(seqs.Range(3, 0, -1))
		if !slices.Equal(got, []int{3, 2, 1}) {
			t.Errorf("Range backward mismatch: got %v", got)
		}
	})

	t.Run("ZeroStep", func(t *testing.T) {
		if got := slices.Collect(seqs.Range(0, 5, 0)); got != nil {
			t.Errorf("Range with zero step should yield nothing, got %v", got)
		}
	})
}

func TestRepeat(t *testing.T) {
	got := slices.Collect(seqs.Repeat("x", 3))
	if !slices.Equal(got, []string{"x", "x", "x"}) {
		t.Errorf("Repeat mismatch: got %v", got)
	}
	if got := slices.Collect(seqs.Repeat(1, 0)); got != nil {
		t.Errorf("Repeat with zero count should yield nothing, got %v", got)
	}
}

func TestTake(t *testing.T) {
	t.Run("BoundsCounter", func(t *testing.T) {
		got := slices.Collect(seqs.Take(seqs.Counter(10, 1), 4))
		if !slices.Equal(got, []int{10, 11, 12, 13}) {
			t.Errorf("Take over Counter mismatch: got %v", got)
		}
	})

	t.Run("ShortInput", func(t *testing.T) {
		got := slices.Collect(seqs.Take(seqs.Range(0, 2, 1), 10))
		if !slices.Equal(got, []int{0, 1}) {
			t.Errorf("Take over short input mismatch: got %v", got)
		}
	})

	t.Run("NonPositive", func(t *testing.T) {
		if got := slices.Collect(seqs.Take(seqs.Counter(0, 1), 0)); got != nil {
			t.Errorf("Take(0) should yield nothing, got %v", got)
		}
	})
}

func TestSkip(t *testing.T) {
	got := slices.Collect(seqs.Skip(seqs.Range(0, 5, 1), 2))
	if !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("Skip mismatch: got %v", got)
	}
	if got := slices.Collect(seqs.Skip(seqs.Range(0, 2, 1), 5)); got != nil {
		t.Errorf("Skip past the end should yield nothing, got %v", got)
	}
}

func TestCounterStep(t *testing.T) {
	got := slices.Collect(seqs.Take(seqs.Counter(0, 5), 3))
	if !slices.Equal(got, []int{0, 5, 10}) {
		t.Errorf("Counter step mismatch: got %v", got)
	}
}
