package keyboard

import (
	"context"
	"log/slog"

	"github.com/iw2rmb/textsync/buffer"
)

// Edit is a whole-text snapshot reported by the native input widget. Cursor
// and SelEnd are posted in the native unit and queued as rune offsets.
type Edit struct {
	WidgetID string
	Epoch    uint64
	Text     string
	Cursor   int
	SelEnd   int
}

// BridgeConfig configures a Bridge.
type BridgeConfig struct {
	// Buffer is the capacity of the edit channel. Default: 16.
	Buffer int
	// Unit is the unit the native widget counts offsets in. Offsets are
	// converted to and from runes at the Bridge. Default: buffer.UnitRune.
	Unit   buffer.OffsetUnit
	Logger *slog.Logger
}

// Bridge binds at most one Target at a time to a Native input widget.
//
// Post may be called from any goroutine. Every other method must be called
// from the goroutine that owns the targets, the same one that calls their
// methods.
type Bridge struct {
	native Native
	edits  chan Edit
	unit   buffer.OffsetUnit
	log    *slog.Logger

	binding Binding
	target  Target
	epoch   uint64
}

func NewBridge(native Native, cfg BridgeConfig) *Bridge {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 16
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		native: native,
		edits:  make(chan Edit, cfg.Buffer),
		unit:   cfg.Unit,
		log:    cfg.Logger,
	}
}

// Binding returns the current binding state.
func (b *Bridge) Binding() Binding { return b.binding }

// Focus binds t to the native input and asks the native widget to show the
// keyboard for it. A previous binding is released first.
func (b *Bridge) Focus(t Target) {
	if id, ok := b.binding.WidgetID(); ok {
		if id == t.ID() && b.target == t {
			return
		}
		b.release(ReleaseBlur)
	}
	b.epoch++
	b.binding = BoundTo(t.ID(), b.epoch)
	b.target = t

	req := t.FocusRequest()
	req.WidgetID = t.ID()
	req.Epoch = b.epoch
	req.Cursor = buffer.UnitOffset(req.Text, req.Cursor, b.unit)
	b.log.Debug("keyboard requested", "widget", req.WidgetID, "epoch", req.Epoch, "kind", req.Kind.String())
	b.native.RequestFocus(req)
}

// Blur releases the binding and hides the keyboard.
func (b *Bridge) Blur() { b.release(ReleaseBlur) }

// KeyboardHidden releases the binding after the keyboard was dismissed
// outside the application's control.
func (b *Bridge) KeyboardHidden() { b.release(ReleaseKeyboardHidden) }

// Pause releases the binding while the application is in the background.
func (b *Bridge) Pause() { b.release(ReleasePause) }

func (b *Bridge) release(reason ReleaseReason) {
	if !b.binding.Bound() {
		return
	}
	b.log.Debug("keyboard released", "binding", b.binding.String(), "reason", reason.String())
	b.binding = Unbound()
	b.target = nil
	b.native.ReleaseFocus(reason)
}

// Post queues a snapshot from the native widget. Offsets are converted to
// runes and clamped to the text; some keyboards report negative cursors
// after deleting at offset 0.
func (b *Bridge) Post(ctx context.Context, e Edit) error {
	e.Cursor = buffer.RuneOffset(e.Text, e.Cursor, b.unit)
	e.SelEnd = buffer.RuneOffset(e.Text, e.SelEnd, b.unit)
	select {
	case b.edits <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Edits exposes the queue for hosts that select over several sources.
func (b *Bridge) Edits() <-chan Edit { return b.edits }

// Next waits for the next queued snapshot.
func (b *Bridge) Next(ctx context.Context) (Edit, error) {
	select {
	case e := <-b.edits:
		return e, nil
	case <-ctx.Done():
		return Edit{}, ctx.Err()
	}
}

// Deliver hands e to the bound target. Snapshots typed for another widget or
// an earlier binding are dropped and Deliver returns false.
func (b *Bridge) Deliver(e Edit) bool {
	if !b.binding.Accepts(e.WidgetID, e.Epoch) {
		b.log.Debug("dropping stale edit", "widget", e.WidgetID, "epoch", e.Epoch, "binding", b.binding.String())
		return false
	}
	b.target.OnExternalTextChanged(e.Text, e.Cursor, e.SelEnd)
	return true
}

// Pump delivers queued snapshots until ctx is done.
func (b *Bridge) Pump(ctx context.Context) error {
	for {
		e, err := b.Next(ctx)
		if err != nil {
			return err
		}
		b.Deliver(e)
	}
}

// ForceSetText pushes text to the native widget if widgetID is bound.
func (b *Bridge) ForceSetText(widgetID, text string, cursor int) bool {
	if id, ok := b.binding.WidgetID(); !ok || id != widgetID {
		return false
	}
	b.native.ForceSetText(text, buffer.UnitOffset(text, cursor, b.unit))
	return true
}

// ForceSetSelection pushes a selection to the native widget if widgetID is
// bound.
func (b *Bridge) ForceSetSelection(widgetID string, start, end int) bool {
	if id, ok := b.binding.WidgetID(); !ok || id != widgetID {
		return false
	}
	text := b.target.Text()
	b.native.ForceSetSelection(buffer.UnitOffset(text, start, b.unit), buffer.UnitOffset(text, end, b.unit))
	return true
}

// SyncerFor returns a syncer that forwards to the native widget only while
// widgetID is bound.
func (b *Bridge) SyncerFor(widgetID string) *WidgetSyncer {
	return &WidgetSyncer{bridge: b, widgetID: widgetID}
}

// WidgetSyncer pushes corrections for one widget through a Bridge.
type WidgetSyncer struct {
	bridge   *Bridge
	widgetID string
}

func (s *WidgetSyncer) ForceSetText(text string, cursor int) {
	s.bridge.ForceSetText(s.widgetID, text, cursor)
}

func (s *WidgetSyncer) ForceSetSelection(start, end int) {
	s.bridge.ForceSetSelection(s.widgetID, start, end)
}
