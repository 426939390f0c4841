package native

import (
	"time"

	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/toolkit"
)

// region adapts an imm.Ui to toolkit.Region. It goes stale when the
// callback that received it returns; calls on a stale region are ignored.
type region struct {
	u      *imm.Ui
	closed bool
}

var _ toolkit.Region = (*region)(nil)

// Valid reports whether the region may still be drawn into.
func (r *region) Valid() bool { return !r.closed }

// scoped runs body with a fresh region over u and closes it afterwards.
func scoped(u *imm.Ui, body func(toolkit.Region)) {
	child := &region{u: u}
	defer func() { child.closed = true }()
	body(child)
}

func (r *region) Open(kind toolkit.Kind, p toolkit.Params, body func(toolkit.Region)) bool {
	if r.closed || body == nil {
		return false
	}
	ran := false
	run := func(c *imm.Ui) {
		ran = true
		scoped(c, body)
	}
	switch kind {
	case toolkit.KindHorizontal:
		r.u.Horizontal(run)
	case toolkit.KindHorizontalCentered:
		r.u.HorizontalCentered(run)
	case toolkit.KindHorizontalTop:
		r.u.HorizontalTop(run)
	case toolkit.KindHorizontalWrapped:
		r.u.HorizontalWrapped(run)
	case toolkit.KindVertical:
		r.u.Vertical(run)
	case toolkit.KindVerticalCentered:
		r.u.VerticalCentered(run)
	case toolkit.KindCollapsing:
		r.u.Collapsing(p.Title, run)
	case toolkit.KindIndent:
		r.u.Indent(run)
	case toolkit.KindGroup:
		r.u.Group(run)
	case toolkit.KindScope:
		r.u.Scope(run)
	case toolkit.KindEnabled:
		r.u.Enabled(p.Enabled, run)
	default:
		return false
	}
	return ran
}

func (r *region) Heading(s string) {
	if !r.closed {
		r.u.Heading(s)
	}
}

func (r *region) Monospace(s string) {
	if !r.closed {
		r.u.Monospace(s)
	}
}

func (r *region) Small(s string) {
	if !r.closed {
		r.u.Small(s)
	}
}

func (r *region) Strong(s string) {
	if !r.closed {
		r.u.Strong(s)
	}
}

func (r *region) Weak(s string) {
	if !r.closed {
		r.u.Weak(s)
	}
}

func (r *region) Label(s string) {
	if !r.closed {
		r.u.Label(s)
	}
}

func (r *region) Code(s string) {
	if !r.closed {
		r.u.Code(s)
	}
}

func (r *region) textEdit(s *string, opts imm.TextEditOptions) {
	if !r.closed && s != nil {
		r.u.TextEdit(s, opts)
	}
}

func (r *region) CodeEditor(s *string) {
	r.textEdit(s, imm.TextEditOptions{Multiline: true, Code: true, Rows: 8})
}

func (r *region) TextEditSingleline(s *string) { r.textEdit(s, imm.TextEditOptions{}) }

func (r *region) TextEditMultiline(s *string) {
	r.textEdit(s, imm.TextEditOptions{Multiline: true, Rows: 4})
}

func (r *region) Button(s string) bool      { return !r.closed && r.u.Button(s) }
func (r *region) SmallButton(s string) bool { return !r.closed && r.u.SmallButton(s) }
func (r *region) Link(s string) bool        { return !r.closed && r.u.Link(s) }

func (r *region) Hyperlink(url string) {
	if !r.closed {
		r.u.Hyperlink(url)
	}
}

func (r *region) HyperlinkTo(label, url string) {
	if !r.closed {
		r.u.HyperlinkTo(label, url)
	}
}

func (r *region) ImageAndTextButton(src, s string) bool {
	return !r.closed && r.u.ImageAndTextButton(src, s)
}

func (r *region) SliderFloat(v *float32, lo, hi float32, s string) {
	if !r.closed {
		r.u.SliderFloat(v, lo, hi, s)
	}
}

func (r *region) SliderInt(v *int32, lo, hi int32, s string) {
	if !r.closed {
		r.u.SliderInt(v, lo, hi, s)
	}
}

func (r *region) DragFloat(v *float32, lo, hi, speed float32) {
	if !r.closed {
		r.u.DragFloat(v, lo, hi, speed)
	}
}

func (r *region) DragInt(v *int32, lo, hi int32, speed float32) {
	if !r.closed {
		r.u.DragInt(v, lo, hi, speed)
	}
}

func (r *region) Checkbox(v *bool, s string) {
	if !r.closed {
		r.u.Checkbox(v, s)
	}
}

func (r *region) ToggleValue(v *bool, s string) {
	if !r.closed {
		r.u.ToggleValue(v, s)
	}
}

func (r *region) RadioValue(cur *int32, alt int32, s string) {
	if !r.closed {
		r.u.RadioValue(cur, alt, s)
	}
}

func (r *region) SelectableValue(cur *int32, alt int32, s string) {
	if !r.closed {
		r.u.SelectableValue(cur, alt, s)
	}
}

func (r *region) ComboBox(label, selected string, popup func(list toolkit.Region)) {
	if r.closed {
		return
	}
	r.u.ComboBox(label, selected, func(list *imm.Ui) {
		if popup != nil {
			scoped(list, popup)
		}
	})
}

func (r *region) Progress(v float32) {
	if !r.closed {
		r.u.Progress(v)
	}
}

func (r *region) Spinner() {
	if !r.closed {
		r.u.Spinner()
	}
}

func (r *region) ColorEditRGB(rgb *[3]float32) {
	if !r.closed {
		r.u.ColorEditRGB(rgb)
	}
}

func (r *region) Image(src string) {
	if !r.closed {
		r.u.Image(src)
	}
}

func (r *region) DatePickerButton(d *time.Time) {
	if !r.closed {
		r.u.DatePickerButton(d)
	}
}

func (r *region) Separator() {
	if !r.closed {
		r.u.Separator()
	}
}

func (r *region) AddSpace(amount float32) {
	if !r.closed {
		r.u.AddSpace(amount)
	}
}

func (r *region) SetInvisible() {
	if !r.closed {
		r.u.SetInvisible()
	}
}

func (r *region) Disable() {
	if !r.closed {
		r.u.Disable()
	}
}

func (r *region) SetOpacity(a float32) {
	if !r.closed {
		r.u.SetOpacity(a)
	}
}
