package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal is a programmatic or key-driven edit.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceRemote is a whole-text snapshot reported by the native widget.
	ChangeSourceRemote
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes the minimal replacement that turns the old text into
// the new one. For snapshots it is derived by trimming the common prefix and
// suffix, so a single typed rune shows up as a one-rune insertion.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    int
	CursorAfter     int
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	// Edit is zero when only the cursor or selection moved.
	Edit     AppliedEdit
	TextEdit bool
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    int
	selectionBefore SelectionState
	textBefore      []rune
}

// LastChange returns the most recent effective edit or snapshot.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) selectionState() SelectionState {
	r, ok := b.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: b.selectionState(),
		textBefore:      b.text,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	edit, textEdit := diffEdit(cb.textBefore, b.text)
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		Edit:            edit,
		TextEdit:        textEdit,
	}
	b.hasLastChange = true
}

func diffEdit(before, after []rune) (AppliedEdit, bool) {
	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}
	if prefix == len(before) && prefix == len(after) {
		return AppliedEdit{}, false
	}
	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}
	return AppliedEdit{
		RangeBefore: Range{Start: prefix, End: len(before) - suffix},
		RangeAfter:  Range{Start: prefix, End: len(after) - suffix},
		InsertText:  string(after[prefix : len(after)-suffix]),
		DeletedText: string(before[prefix : len(before)-suffix]),
	}, true
}
