package ui

import (
	"github.com/hubastard/frameui/engine/core"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Each scope function opens a child region, makes it current for the
// duration of body, and restores the previous region however body exits. A
// body error or panic is reported; whether it is returned depends on the
// session's core.Policy.

func scope(op string, kind toolkit.Kind, p toolkit.Params, body func() error) error {
	_, err := core.Invoke(op, kind, p, body)
	return err
}

// Horizontal lays out the widgets drawn by body left to right.
func Horizontal(body func() error) error {
	return scope("ui.Horizontal", toolkit.KindHorizontal, toolkit.Params{}, body)
}

// HorizontalCentered is Horizontal with widgets centered vertically.
func HorizontalCentered(body func() error) error {
	return scope("ui.HorizontalCentered", toolkit.KindHorizontalCentered, toolkit.Params{}, body)
}

// HorizontalTop is Horizontal with widgets aligned to the top.
func HorizontalTop(body func() error) error {
	return scope("ui.HorizontalTop", toolkit.KindHorizontalTop, toolkit.Params{}, body)
}

// HorizontalWrapped is Horizontal that starts a new row when out of space.
func HorizontalWrapped(body func() error) error {
	return scope("ui.HorizontalWrapped", toolkit.KindHorizontalWrapped, toolkit.Params{}, body)
}

// Vertical lays out the widgets drawn by body top to bottom.
func Vertical(body func() error) error {
	return scope("ui.Vertical", toolkit.KindVertical, toolkit.Params{}, body)
}

// VerticalCentered is Vertical with widgets centered horizontally.
func VerticalCentered(body func() error) error {
	return scope("ui.VerticalCentered", toolkit.KindVerticalCentered, toolkit.Params{}, body)
}

// Indent shifts the widgets drawn by body to the right.
func Indent(body func() error) error {
	return scope("ui.Indent", toolkit.KindIndent, toolkit.Params{}, body)
}

// Group draws a frame around the widgets drawn by body.
func Group(body func() error) error {
	return scope("ui.Group", toolkit.KindGroup, toolkit.Params{}, body)
}

// Scope isolates style changes (Disable, SetOpacity, SetInvisible) made in
// body from the enclosing region.
func Scope(body func() error) error {
	return scope("ui.Scope", toolkit.KindScope, toolkit.Params{}, body)
}

// AddEnabled runs body in a region whose widgets are interactive only if
// enabled.
func AddEnabled(enabled bool, body func() error) error {
	return scope("ui.AddEnabled", toolkit.KindEnabled, toolkit.Params{Enabled: enabled}, body)
}

// Collapsing draws a header that expands to run body. open is false and body
// does not run while the section is collapsed.
func Collapsing(heading string, body func() error) (open bool, err error) {
	out, err := core.Invoke("ui.Collapsing", toolkit.KindCollapsing, toolkit.Params{Title: heading}, body)
	return out == core.OutcomeOpened, err
}
