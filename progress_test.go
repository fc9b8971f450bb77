package scrollfx

import "testing"

func TestScrubProgressClampsAndInterpolates(t *testing.T) {
	cases := []struct {
		scroll, start, end, want float64
	}{
		{-50, 0, 800, 0},
		{0, 0, 800, 0},
		{200, 0, 800, 0.25},
		{400, 0, 800, 0.5},
		{800, 0, 800, 1},
		{1000, 0, 800, 1},
		{150, 100, 300, 0.25},
	}
	for _, c := range cases {
		if got := scrubProgress(c.scroll, c.start, c.end); got != c.want {
			t.Errorf("scrubProgress(%v, %v, %v) = %v, want %v", c.scroll, c.start, c.end, got, c.want)
		}
	}
}

func TestScrubProgressMonotonic(t *testing.T) {
	prev := -1.0
	for s := -200.0; s <= 1200; s += 7 {
		p := scrubProgress(s, 0, 800)
		if p < prev {
			t.Fatalf("progress decreased at scroll %v: %v < %v", s, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of range at scroll %v", p, s)
		}
		prev = p
	}
}

func TestScrubProgressZeroWindowSnaps(t *testing.T) {
	if got := scrubProgress(99, 100, 100); got != 0 {
		t.Errorf("before boundary = %v, want 0", got)
	}
	if got := scrubProgress(100, 100, 100); got != 1 {
		t.Errorf("at boundary = %v, want 1", got)
	}
	if got := scrubProgress(150, 100, 50); got != 1 {
		t.Errorf("inverted window past start = %v, want 1", got)
	}
}

func TestCrossed(t *testing.T) {
	if crossed(99, 100) {
		t.Error("99 should not cross 100")
	}
	if !crossed(100, 100) || !crossed(101, 100) {
		t.Error("100 and 101 should cross 100")
	}
}
