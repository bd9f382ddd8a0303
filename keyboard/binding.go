package keyboard

import "fmt"

// Binding is the native input's association with a widget: either unbound,
// or bound to one widget for one epoch. The zero value is unbound.
type Binding struct {
	widgetID string
	epoch    uint64
	bound    bool
}

// Unbound returns the unbound state.
func Unbound() Binding { return Binding{} }

// BoundTo returns the state of being bound to widgetID during epoch.
func BoundTo(widgetID string, epoch uint64) Binding {
	return Binding{widgetID: widgetID, epoch: epoch, bound: true}
}

func (b Binding) Bound() bool { return b.bound }

// WidgetID returns the bound widget, or "" and false when unbound.
func (b Binding) WidgetID() (string, bool) { return b.widgetID, b.bound }

func (b Binding) Epoch() uint64 { return b.epoch }

// Accepts reports whether an edit for widgetID typed during epoch may be
// delivered under this binding.
func (b Binding) Accepts(widgetID string, epoch uint64) bool {
	return b.bound && b.widgetID == widgetID && b.epoch == epoch
}

func (b Binding) String() string {
	if !b.bound {
		return "unbound"
	}
	return fmt.Sprintf("bound(%s#%d)", b.widgetID, b.epoch)
}
