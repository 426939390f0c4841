// Package ui is the host-facing widget API. Every function draws into the
// region on top of the running session's scope stack, so it may only be
// called from inside the frame callback (or a scope body nested in it) on the
// thread that called Run. Anywhere else it returns a NoActiveFrame error and
// draws nothing.
package ui

import (
	"github.com/hubastard/frameui/engine/core"
	"github.com/hubastard/frameui/engine/toolkit"
)

// draw resolves the current region for op and hands it to fn.
func draw(op string, fn func(r toolkit.Region)) error {
	r, err := core.Current(op)
	if err != nil {
		return err
	}
	fn(r)
	return nil
}

// query is draw for widgets that report an interaction.
func query(op string, fn func(r toolkit.Region) bool) (bool, error) {
	r, err := core.Current(op)
	if err != nil {
		return false, err
	}
	return fn(r), nil
}

// Depth reports how many scopes are open, counting the frame's root. It is 0
// outside a frame.
func Depth() int { return core.Depth() }
