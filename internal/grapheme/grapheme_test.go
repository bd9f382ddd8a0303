package grapheme

import (
	"reflect"
	"testing"
)

var defaultTerms = [2]rune{'\n', '\r'}

func TestBoundaries_MultiRuneClusters(t *testing.T) {
	text := []rune("a" + "e\u0301" + "b")
	got := Boundaries(text)
	want := []int{0, 1, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("boundaries: got %v, want %v", got, want)
	}

	if got := Boundaries(nil); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("empty boundaries: got %v, want [0]", got)
	}
}

func TestNextPrev_DoNotSplitClusters(t *testing.T) {
	text := []rune("x\r\ny" + "e\u0301")

	cases := []struct {
		name string
		fn   func([]rune, int) int
		off  int
		want int
	}{
		{name: "next over crlf", fn: Next, off: 1, want: 3},
		{name: "prev over crlf", fn: Prev, off: 3, want: 1},
		{name: "next over combining", fn: Next, off: 4, want: 6},
		{name: "prev over combining", fn: Prev, off: 6, want: 4},
		{name: "next at end", fn: Next, off: 6, want: 6},
		{name: "prev at start", fn: Prev, off: 0, want: 0},
		{name: "next negative", fn: Next, off: -3, want: 1},
		{name: "prev past end", fn: Prev, off: 99, want: 4},
	}

	for _, tc := range cases {
		if got := tc.fn(text, tc.off); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCount(t *testing.T) {
	if c := Count("a" + "e\u0301" + "b"); c != 3 {
		t.Fatalf("count=%d, want %d", c, 3)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace('\t') {
		t.Fatalf("tab should be space")
	}
	if IsSpace('a') {
		t.Fatalf("letter should not be space")
	}
	if !IsTerminator('\r', defaultTerms) {
		t.Fatalf("carriage return should be a terminator")
	}
	if IsBreakSpace('\n', defaultTerms) {
		t.Fatalf("newline must not be a soft break")
	}
	if !IsBreakSpace(' ', defaultTerms) {
		t.Fatalf("space should be a soft break")
	}
}

func TestSnap_MovesOutOfCRLF(t *testing.T) {
	text := []rune("a\r\nb\n\rc")
	cases := []struct {
		off  int
		want int
	}{
		{off: 0, want: 0},
		{off: 1, want: 1},
		{off: 2, want: 1},
		{off: 3, want: 3},
		{off: 5, want: 5},
		{off: 6, want: 6},
		{off: 7, want: 7},
	}
	for _, tc := range cases {
		if got := Snap(text, tc.off, defaultTerms); got != tc.want {
			t.Fatalf("Snap(%d): got %d, want %d", tc.off, got, tc.want)
		}
	}

	if Snap(text, 2, [2]rune{'\n', ' '}) != 2 {
		t.Fatalf("a CR that is not a terminator forms no pair")
	}
}
