// Package keyboard connects text widgets to a native input widget that owns
// the on-screen keyboard.
//
// The native widget runs on its own goroutine and reports whole-text
// snapshots. A Bridge marshals those snapshots onto the goroutine that owns
// the widgets over a channel, and tracks which widget is bound to the native
// input so that edits typed for a previous widget are never delivered to the
// next one.
package keyboard
