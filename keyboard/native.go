package keyboard

// ReleaseReason tells the native widget why it lost its binding.
type ReleaseReason uint8

const (
	// ReleaseBlur hides the keyboard because the widget lost focus.
	ReleaseBlur ReleaseReason = iota
	// ReleaseKeyboardHidden follows the user dismissing the keyboard.
	ReleaseKeyboardHidden
	// ReleasePause hides the keyboard while the application is paused.
	ReleasePause
)

func (r ReleaseReason) String() string {
	switch r {
	case ReleaseBlur:
		return "blur"
	case ReleaseKeyboardHidden:
		return "keyboard-hidden"
	case ReleasePause:
		return "pause"
	default:
		return "unknown"
	}
}

// Native is the outbound side of the native input widget. Bridge calls it
// from the goroutine that owns the widgets; implementations hop to their own
// thread as needed.
type Native interface {
	RequestFocus(req FocusRequest)
	// ForceSetText replaces the native text without reporting it back.
	// Applying the same text and cursor twice is a no-op.
	ForceSetText(text string, cursor int)
	ForceSetSelection(start, end int)
	ReleaseFocus(reason ReleaseReason)
}

// Target is a widget that can be bound to the native input.
type Target interface {
	ID() string
	Text() string
	FocusRequest() FocusRequest
	OnExternalTextChanged(text string, cursor, selEnd int)
}
