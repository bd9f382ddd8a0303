package buffer

import (
	"unicode/utf16"
	"unicode/utf8"
)

// OffsetUnit is the unit a native widget counts text offsets in.
type OffsetUnit uint8

const (
	// UnitRune counts Unicode code points (the buffer's own unit).
	UnitRune OffsetUnit = iota
	// UnitUTF16 counts UTF-16 code units, as Android EditText and iOS UITextField do.
	UnitUTF16
	// UnitByte counts UTF-8 bytes.
	UnitByte
)

func (u OffsetUnit) String() string {
	switch u {
	case UnitRune:
		return "rune"
	case UnitUTF16:
		return "utf16"
	case UnitByte:
		return "byte"
	default:
		return "unknown"
	}
}

// RuneOffset converts off, measured in unit over text, to a rune offset.
//
// off is clamped to the text. An offset that falls inside a multi-unit
// encoding (a surrogate pair or a UTF-8 sequence) maps to the rune that
// contains it.
func RuneOffset(text string, off int, unit OffsetUnit) int {
	if off <= 0 {
		return 0
	}
	switch unit {
	case UnitUTF16:
		units := 0
		runes := 0
		for _, r := range text {
			if units >= off {
				return runes
			}
			units += utf16.RuneLen(r)
			if units > off {
				return runes
			}
			runes++
		}
		return runes
	case UnitByte:
		if off >= len(text) {
			return utf8.RuneCountInString(text)
		}
		for off > 0 && !utf8.RuneStart(text[off]) {
			off--
		}
		return utf8.RuneCountInString(text[:off])
	default:
		return ClampOffset(off, utf8.RuneCountInString(text))
	}
}

// UnitOffset converts a rune offset over text into unit.
func UnitOffset(text string, runeOff int, unit OffsetUnit) int {
	if runeOff <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == runeOff {
			switch unit {
			case UnitByte:
				return i
			case UnitUTF16:
				return utf16Len(text[:i])
			default:
				return n
			}
		}
		n++
	}
	switch unit {
	case UnitByte:
		return len(text)
	case UnitUTF16:
		return utf16Len(text)
	default:
		return n
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
