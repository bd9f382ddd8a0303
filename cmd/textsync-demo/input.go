package main

import (
	"context"
	"errors"

	"github.com/iw2rmb/textsync/keyboard"
)

type inputKind uint8

const (
	inputText inputKind = iota
	inputBackspace
	inputEnter
)

func (k inputKind) String() string {
	switch k {
	case inputText:
		return "text"
	case inputBackspace:
		return "backspace"
	case inputEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// keyInput is a keystroke on the simulated soft keyboard.
type keyInput struct {
	kind inputKind
	text string
}

// runInput plays keystrokes into the native widget until ctx is done. It
// stands in for the platform's input thread.
func runInput(ctx context.Context, sim *keyboard.Simulated, in <-chan keyInput) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case k := <-in:
			if err := press(ctx, sim, k); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

func press(ctx context.Context, sim *keyboard.Simulated, k keyInput) error {
	switch k.kind {
	case inputBackspace:
		return sim.Backspace(ctx)
	case inputEnter:
		return sim.Enter(ctx)
	default:
		return sim.Type(ctx, k.text)
	}
}
