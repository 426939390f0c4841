package toolkittest

import (
	"fmt"
	"time"

	"github.com/hubastard/frameui/engine/toolkit"
)

// Region records every call made on it. It becomes invalid once the
// callback that produced it returns.
type Region struct {
	tk     *Toolkit
	frame  uint64
	depth  int
	closed bool
}

var _ toolkit.Region = (*Region)(nil)

// Valid reports whether the region is still inside its producing callback.
func (r *Region) Valid() bool { return !r.closed }

func (r *Region) close() { r.closed = true }

func (r *Region) rec(name, text string) {
	if r.closed {
		panic(fmt.Sprintf("toolkittest: %s on a closed region", name))
	}
	r.tk.record(Op{Frame: r.frame, Depth: r.depth, Name: name, Text: text})
}

func (r *Region) child() *Region {
	return &Region{tk: r.tk, frame: r.frame, depth: r.depth + 1}
}

func (r *Region) Open(kind toolkit.Kind, p toolkit.Params, body func(child toolkit.Region)) bool {
	r.rec("open:"+kind.String(), p.Title)
	if kind == toolkit.KindCollapsing && r.tk.Collapsed[p.Title] {
		return false
	}
	c := r.child()
	defer c.close()
	body(c)
	return true
}

func (r *Region) Heading(text string)   { r.rec("heading", text) }
func (r *Region) Monospace(text string) { r.rec("monospace", text) }
func (r *Region) Small(text string)     { r.rec("small", text) }
func (r *Region) Strong(text string)    { r.rec("strong", text) }
func (r *Region) Weak(text string)      { r.rec("weak", text) }
func (r *Region) Label(text string)     { r.rec("label", text) }
func (r *Region) Code(text string)      { r.rec("code", text) }

func (r *Region) CodeEditor(text *string)         { r.rec("code_editor", *text) }
func (r *Region) TextEditSingleline(text *string) { r.rec("text_edit_singleline", *text) }
func (r *Region) TextEditMultiline(text *string)  { r.rec("text_edit_multiline", *text) }

func (r *Region) Button(text string) bool {
	r.rec("button", text)
	return r.tk.Clicked[text]
}

func (r *Region) SmallButton(text string) bool {
	r.rec("small_button", text)
	return r.tk.Clicked[text]
}

func (r *Region) Link(text string) bool {
	r.rec("link", text)
	return r.tk.Clicked[text]
}

func (r *Region) Hyperlink(url string)          { r.rec("hyperlink", url) }
func (r *Region) HyperlinkTo(label, url string) { r.rec("hyperlink_to", label+" "+url) }

func (r *Region) ImageAndTextButton(src, text string) bool {
	r.rec("image_and_text_button", src+" "+text)
	return r.tk.Clicked[text]
}

func (r *Region) SliderFloat(v *float32, min, max float32, text string) {
	r.rec("slider_float", fmt.Sprintf("%s %g [%g,%g]", text, *v, min, max))
}

func (r *Region) SliderInt(v *int32, min, max int32, text string) {
	r.rec("slider_int", fmt.Sprintf("%s %d [%d,%d]", text, *v, min, max))
}

func (r *Region) DragFloat(v *float32, min, max, speed float32) {
	r.rec("drag_float", fmt.Sprintf("%g [%g,%g] %g", *v, min, max, speed))
}

func (r *Region) DragInt(v *int32, min, max int32, speed float32) {
	r.rec("drag_int", fmt.Sprintf("%d [%d,%d] %g", *v, min, max, speed))
}

func (r *Region) Checkbox(v *bool, text string) {
	r.rec("checkbox", text)
	if r.tk.Clicked[text] {
		*v = !*v
	}
}

func (r *Region) ToggleValue(v *bool, text string) {
	r.rec("toggle_value", text)
	if r.tk.Clicked[text] {
		*v = !*v
	}
}

func (r *Region) RadioValue(current *int32, alternative int32, text string) {
	r.rec("radio_value", text)
	if r.tk.Clicked[text] {
		*current = alternative
	}
}

func (r *Region) SelectableValue(current *int32, alternative int32, text string) {
	r.rec("selectable_value", text)
	if r.tk.Clicked[text] {
		*current = alternative
	}
}

func (r *Region) ComboBox(label, selected string, popup func(list toolkit.Region)) {
	r.rec("combo_box", label+"="+selected)
	if !r.tk.OpenCombos[label] {
		return
	}
	c := r.child()
	defer c.close()
	popup(c)
}

func (r *Region) Progress(v float32) { r.rec("progress", fmt.Sprintf("%g", v)) }
func (r *Region) Spinner()           { r.rec("spinner", "") }

func (r *Region) ColorEditRGB(rgb *[3]float32) {
	r.rec("color_edit_rgb", fmt.Sprintf("%g %g %g", rgb[0], rgb[1], rgb[2]))
}

func (r *Region) Image(src string) {
	r.rec("image", src)
	_, _ = r.tk.loadImage(src)
}

func (r *Region) DatePickerButton(date *time.Time) {
	r.rec("date_picker_button", date.Format(time.DateOnly))
}

func (r *Region) Separator()              { r.rec("separator", "") }
func (r *Region) AddSpace(amount float32) { r.rec("add_space", fmt.Sprintf("%g", amount)) }
func (r *Region) SetInvisible()           { r.rec("set_invisible", "") }
func (r *Region) Disable()                { r.rec("disable", "") }

func (r *Region) SetOpacity(opacity float32) {
	r.rec("set_opacity", fmt.Sprintf("%g", opacity))
}
