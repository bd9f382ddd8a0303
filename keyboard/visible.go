package keyboard

// State is the keyboard state inferred from the visible area of the screen.
type State struct {
	// Height is the keyboard height in application units.
	Height int
	Open   bool
}

// Infer guesses the keyboard state from how much the visible area is
// shorter than the screen. scale converts screen units to application
// units. A shrink of 2 units or less counts as closed.
func Infer(screenHeight, visibleHeight, scale float64) State {
	shrink := screenHeight - visibleHeight
	h := 0
	if scale > 0 {
		h = int(shrink / scale)
	}
	return State{Height: h, Open: shrink > 2}
}

// VisibleView reports keyboard state changes as the visible area resizes.
type VisibleView struct {
	Scale    float64
	OnChange func(State)

	screen, visible float64
	known           bool
}

// SizeChanged records a new screen and visible height. OnChange runs only
// when either differs from the previous call.
func (v *VisibleView) SizeChanged(screenHeight, visibleHeight float64) {
	if v.known && v.screen == screenHeight && v.visible == visibleHeight {
		return
	}
	v.screen, v.visible, v.known = screenHeight, visibleHeight, true
	if v.OnChange != nil {
		v.OnChange(Infer(screenHeight, visibleHeight, v.Scale))
	}
}

// State returns the state for the last recorded size.
func (v *VisibleView) State() State {
	return Infer(v.screen, v.visible, v.Scale)
}
