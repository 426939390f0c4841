package ui

import (
	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Heading draws text in the heading style.
func Heading(text string) error {
	return draw("ui.Heading", func(r toolkit.Region) { r.Heading(text) })
}

// Monospace draws text in a fixed-width font.
func Monospace(text string) error {
	return draw("ui.Monospace", func(r toolkit.Region) { r.Monospace(text) })
}

// Small draws text in a smaller font.
func Small(text string) error {
	return draw("ui.Small", func(r toolkit.Region) { r.Small(text) })
}

// Strong draws emphasized text.
func Strong(text string) error {
	return draw("ui.Strong", func(r toolkit.Region) { r.Strong(text) })
}

// Weak draws de-emphasized text.
func Weak(text string) error {
	return draw("ui.Weak", func(r toolkit.Region) { r.Weak(text) })
}

// Label draws plain text.
func Label(text string) error {
	return draw("ui.Label", func(r toolkit.Region) { r.Label(text) })
}

// Code draws inline code.
func Code(text string) error {
	return draw("ui.Code", func(r toolkit.Region) { r.Code(text) })
}

// CodeEditor draws a multi-line monospace editor bound to s.
func CodeEditor(s *cells.Str) error {
	return draw("ui.CodeEditor", func(r toolkit.Region) { r.CodeEditor(&s.Value) })
}

// TextEditSingleline draws a one-line editor bound to s.
func TextEditSingleline(s *cells.Str) error {
	return draw("ui.TextEditSingleline", func(r toolkit.Region) { r.TextEditSingleline(&s.Value) })
}

// TextEditMultiline draws a multi-line editor bound to s.
func TextEditMultiline(s *cells.Str) error {
	return draw("ui.TextEditMultiline", func(r toolkit.Region) { r.TextEditMultiline(&s.Value) })
}

// Hyperlink draws url as a link that opens it.
func Hyperlink(url string) error {
	return draw("ui.Hyperlink", func(r toolkit.Region) { r.Hyperlink(url) })
}

// HyperlinkTo draws label as a link that opens url.
func HyperlinkTo(label, url string) error {
	return draw("ui.HyperlinkTo", func(r toolkit.Region) { r.HyperlinkTo(label, url) })
}
