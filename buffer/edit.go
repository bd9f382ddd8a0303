package buffer

import "github.com/iw2rmb/textsync/internal/grapheme"

// Replace swaps in a whole-text snapshot and positions the cursor.
//
// Native text widgets report full snapshots rather than diffs, so this is the
// entry point for every edit that comes back from the keyboard. cursor and
// selEnd are clamped to the new text; when they differ, selEnd becomes the
// selection anchor.
func (b *Buffer) Replace(text string, cursor, selEnd int, src ChangeSource) {
	change := b.beginChange(src)

	next := []rune(text)
	if string(b.text) != text {
		b.text = next
		b.textVersion++
		b.version++
	}

	cursor = b.clamp(cursor)
	selEnd = b.clamp(selEnd)
	nextSel := selectionState{}
	if selEnd != cursor {
		nextSel = selectionState{active: true, anchor: selEnd}
	}
	if cursor != b.cursor || nextSel != b.sel {
		b.cursor = cursor
		b.sel = nextSel
		b.version++
	}

	b.commitChange(change)
}

// Insert inserts s at the cursor, or replaces the active selection.
func (b *Buffer) Insert(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replaceRange(r, s)
}

// DeleteBackward applies backspace semantics: the selection, or the grapheme
// cluster before the cursor.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.replaceRange(r, "")
		return
	}
	if b.cursor == 0 {
		return
	}
	b.replaceRange(Range{Start: grapheme.Prev(b.text, b.cursor), End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.replaceRange(r, "")
		return
	}
	if b.cursor == len(b.text) {
		return
	}
	b.replaceRange(Range{Start: b.cursor, End: grapheme.Next(b.text, b.cursor)}, "")
}

// DeleteRange removes [start, end), clamped and normalized.
func (b *Buffer) DeleteRange(start, end int) {
	b.replaceRange(Range{Start: start, End: end}, "")
}

func (b *Buffer) replaceRange(r Range, s string) {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	ins := []rune(s)
	if r.IsEmpty() && len(ins) == 0 {
		return
	}

	change := b.beginChange(ChangeSourceLocal)

	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)

	if string(out) != string(b.text) {
		b.text = out
		b.textVersion++
	}
	b.cursor = r.Start + len(ins)
	b.sel = selectionState{}
	b.version++

	b.commitChange(change)
}
