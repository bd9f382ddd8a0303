package buffer

import "testing"

func TestNormalizeRange(t *testing.T) {
	if got := NormalizeRange(Range{Start: 5, End: 2}); got != (Range{Start: 2, End: 5}) {
		t.Fatalf("got %v, want [2,5)", got)
	}
	if got := NormalizeRange(Range{Start: 1, End: 4}); got != (Range{Start: 1, End: 4}) {
		t.Fatalf("got %v, want [1,4)", got)
	}
}

func TestRange_LenContains(t *testing.T) {
	r := Range{Start: 6, End: 2}
	if r.Len() != 4 {
		t.Fatalf("len=%d, want 4", r.Len())
	}
	for _, off := range []int{2, 4, 6} {
		if !r.Contains(off) {
			t.Fatalf("expected %d inside %v", off, r)
		}
	}
	if r.Contains(7) || r.Contains(1) {
		t.Fatalf("unexpected containment")
	}
	if !(Range{Start: 3, End: 3}).IsEmpty() {
		t.Fatalf("expected empty range")
	}
}

func TestClampOffset(t *testing.T) {
	cases := []struct{ off, n, want int }{
		{off: -1, n: 5, want: 0},
		{off: 3, n: 5, want: 3},
		{off: 9, n: 5, want: 5},
		{off: 0, n: 0, want: 0},
	}
	for _, tc := range cases {
		if got := ClampOffset(tc.off, tc.n); got != tc.want {
			t.Fatalf("ClampOffset(%d,%d): got %d, want %d", tc.off, tc.n, got, tc.want)
		}
	}
	if got := ClampRange(Range{Start: -3, End: 99}, 4); got != (Range{Start: 0, End: 4}) {
		t.Fatalf("clamp range: got %v", got)
	}
}
