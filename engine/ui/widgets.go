package ui

import (
	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/toolkit"
)

// ButtonClicked draws a button and reports whether it was clicked this frame.
func ButtonClicked(text string) (bool, error) {
	return query("ui.ButtonClicked", func(r toolkit.Region) bool { return r.Button(text) })
}

// SmallButtonClicked is ButtonClicked without padding.
func SmallButtonClicked(text string) (bool, error) {
	return query("ui.SmallButtonClicked", func(r toolkit.Region) bool { return r.SmallButton(text) })
}

// LinkClicked draws text that looks like a link and reports a click.
func LinkClicked(text string) (bool, error) {
	return query("ui.LinkClicked", func(r toolkit.Region) bool { return r.Link(text) })
}

// ImageAndTextClicked draws a button with the image at src beside text.
func ImageAndTextClicked(src, text string) (bool, error) {
	return query("ui.ImageAndTextClicked", func(r toolkit.Region) bool { return r.ImageAndTextButton(src, text) })
}

// SliderFloat draws a slider over [min, max] bound to v. v is only written
// when the user moves the slider.
func SliderFloat(v *cells.Float, min, max float32, text string) error {
	return draw("ui.SliderFloat", func(r toolkit.Region) { r.SliderFloat(&v.Value, min, max, text) })
}

// SliderInt draws an integer slider over [min, max] bound to v.
func SliderInt(v *cells.Int, min, max int32, text string) error {
	return draw("ui.SliderInt", func(r toolkit.Region) { r.SliderInt(&v.Value, min, max, text) })
}

// DragFloat draws a value the user changes by dragging, speed units per pixel.
func DragFloat(v *cells.Float, min, max, speed float32) error {
	return draw("ui.DragFloat", func(r toolkit.Region) { r.DragFloat(&v.Value, min, max, speed) })
}

// DragInt is DragFloat for integers.
func DragInt(v *cells.Int, min, max int32, speed float32) error {
	return draw("ui.DragInt", func(r toolkit.Region) { r.DragInt(&v.Value, min, max, speed) })
}

// Checkbox draws a checkbox bound to v.
func Checkbox(v *cells.Bool, text string) error {
	return draw("ui.Checkbox", func(r toolkit.Region) { r.Checkbox(&v.Value, text) })
}

// ToggleValue draws a selectable label that flips v when clicked.
func ToggleValue(v *cells.Bool, text string) error {
	return draw("ui.ToggleValue", func(r toolkit.Region) { r.ToggleValue(&v.Value, text) })
}

// RadioValue draws a radio button that sets v to alternative when clicked.
func RadioValue(v *cells.Int, alternative int32, text string) error {
	return draw("ui.RadioValue", func(r toolkit.Region) { r.RadioValue(&v.Value, alternative, text) })
}

// SelectableValue draws a selectable label that sets v to alternative when clicked.
func SelectableValue(v *cells.Int, alternative int32, text string) error {
	return draw("ui.SelectableValue", func(r toolkit.Region) { r.SelectableValue(&v.Value, alternative, text) })
}

// Progress draws a progress bar; v is clamped to [0, 1] by the toolkit.
func Progress(v float32) error {
	return draw("ui.Progress", func(r toolkit.Region) { r.Progress(v) })
}

// Spinner draws a busy indicator.
func Spinner() error {
	return draw("ui.Spinner", func(r toolkit.Region) { r.Spinner() })
}

// ColorEditButtonRGB draws a color swatch that opens an RGB editor for c.
func ColorEditButtonRGB(c *cells.RGB) error {
	return draw("ui.ColorEditButtonRGB", func(r toolkit.Region) {
		rgb := c.Array()
		r.ColorEditRGB(&rgb)
		c.SetArray(rgb)
	})
}

// Image draws the image at src (a path, file:// or http(s) URI).
func Image(src string) error {
	return draw("ui.Image", func(r toolkit.Region) { r.Image(src) })
}

// DatePickerButton draws a button showing d that opens a date picker.
func DatePickerButton(d *cells.Date) error {
	return draw("ui.DatePickerButton", func(r toolkit.Region) {
		t := d.Value
		r.DatePickerButton(&t)
		if !t.Equal(d.Value) {
			d.Set(t)
		}
	})
}

// Separator draws a horizontal or vertical rule, following the layout.
func Separator() error {
	return draw("ui.Separator", func(r toolkit.Region) { r.Separator() })
}

// AddSpace inserts amount pixels of empty space.
func AddSpace(amount float32) error {
	return draw("ui.AddSpace", func(r toolkit.Region) { r.AddSpace(amount) })
}

// SetInvisible hides everything drawn after it in the current region. Space
// is still allocated.
func SetInvisible() error {
	return draw("ui.SetInvisible", func(r toolkit.Region) { r.SetInvisible() })
}

// Disable greys out and deactivates everything drawn after it in the current
// region.
func Disable() error {
	return draw("ui.Disable", func(r toolkit.Region) { r.Disable() })
}

// SetOpacity multiplies the opacity of everything drawn after it in the
// current region.
func SetOpacity(opacity float32) error {
	return draw("ui.SetOpacity", func(r toolkit.Region) { r.SetOpacity(opacity) })
}
