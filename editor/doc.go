// Package editor provides the layout and editing core of a text field or
// multi-line text area driven by a native keyboard.
//
// A TextArea partitions its buffer into visual lines (ComputeLines), maps
// cursor offsets to lines and back, scrolls a window of whole lines, applies
// whole-text snapshots reported by the native input widget, and enforces an
// optional line limit by reverting the last typed rune. View and Update host
// the widget in a Bubble Tea program.
package editor
