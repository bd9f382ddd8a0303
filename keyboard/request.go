package keyboard

// Kind selects the native keyboard layout.
type Kind uint8

const (
	KindText Kind = iota
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// FocusRequest configures the native input widget for a newly focused widget.
type FocusRequest struct {
	WidgetID string
	Text     string
	Cursor   int

	Kind        Kind
	AutoCorrect bool
	Suggestions bool
	// Multiline enables the carriage-return key.
	Multiline bool

	// Epoch identifies the binding; set by Bridge.Focus. Edits must carry it
	// back.
	Epoch uint64
}
