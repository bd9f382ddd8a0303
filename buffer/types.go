package buffer

// Range is a half-open selection over rune offsets: [Start, End).
// Start <= End once normalized.
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// Contains reports whether off lies inside the closed range [Start, End].
func (r Range) Contains(off int) bool {
	r = NormalizeRange(r)
	return off >= r.Start && off <= r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, n].
//
// Out-of-range offsets are never an error: some keyboard drivers report -1
// after deleting at the start of the text.
func ClampOffset(off, n int) int {
	return clampInt(off, 0, n)
}

func ClampRange(r Range, n int) Range {
	return Range{
		Start: ClampOffset(r.Start, n),
		End:   ClampOffset(r.End, n),
	}
}
