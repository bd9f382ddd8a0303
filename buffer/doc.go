// Package buffer implements the text buffer and cursor model behind a text
// field or text area.
//
// Offsets are 0-based rune offsets. Ranges are half-open: [Start, End).
// Every offset argument is clamped into [0, Len()]; nothing in this package
// reports an out-of-range offset as an error.
package buffer
