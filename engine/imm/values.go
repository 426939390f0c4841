package imm

import (
	"errors"
	"image"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hubastard/frameui/engine/colors"
	"github.com/hubastard/frameui/engine/input"
)

var errNoImages = errors.New("imm: no image source configured")

func (u *Ui) load(src string) (image.Image, error) {
	if u.ctx.Images == nil {
		return nil, errNoImages
	}
	return u.ctx.Images(src)
}

func formatFloat(v float32) string { return strconv.FormatFloat(float64(v), 'g', 4, 32) }

// slider draws a track filled to t in [0, 1] followed by label and returns
// the position the user dragged to.
func (u *Ui) slider(label string, t float32, value string) (float32, bool) {
	id := u.widgetID("#slider:" + label)
	pad := u.ctx.Style.Padding
	tw, th := u.measure(label, StyleBody)
	width := u.ctx.Style.SliderWidth
	r := u.allocate(width+pad+tw, u.rowHeight())
	track := Rect{X: r.X, Y: r.Y, W: width, H: r.H}
	hot, _ := u.interact(id, track)

	var (
		next  = t
		moved bool
	)
	if u.dragging(id) && track.W > 0 {
		next = clampf((u.ctx.in.MouseX-track.X)/track.W, 0, 1)
		moved = true
	}

	u.fill(track, u.widgetColor(id, hot))
	u.fill(Rect{X: track.X, Y: track.Y, W: track.W * clampf(next, 0, 1), H: track.H}, colors.Accent.Fade(0.5))
	vw, _ := u.measure(value, StyleBody)
	u.text(track.X+(track.W-vw)*0.5, track.Y+(track.H-th)*0.5, value, StyleBody)
	u.text(track.Right()+pad, r.Y+(r.H-th)*0.5, label, StyleBody)
	return next, moved
}

// SliderFloat edits *v in [lo, hi]. *v is only written while dragged.
func (u *Ui) SliderFloat(v *float32, lo, hi float32, label string) bool {
	var t float32
	if hi > lo {
		t = (*v - lo) / (hi - lo)
	}
	next, moved := u.slider(label, t, formatFloat(*v))
	if !moved || hi <= lo {
		return false
	}
	nv := lo + next*(hi-lo)
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// SliderInt edits *v in [lo, hi]. *v is only written while dragged.
func (u *Ui) SliderInt(v *int32, lo, hi int32, label string) bool {
	// int64 keeps hi-lo from overflowing on full int32 ranges.
	span := int64(hi) - int64(lo)
	var t float32
	if span > 0 {
		t = float32(float64(int64(*v)-int64(lo)) / float64(span))
	}
	next, moved := u.slider(label, t, strconv.Itoa(int(*v)))
	if !moved || span <= 0 {
		return false
	}
	off := int64(math.Round(float64(next) * float64(span)))
	nv := int32(min(max(int64(lo)+off, int64(lo)), int64(hi)))
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// drag draws a value box and returns the horizontal mouse travel since the
// previous frame while the box is held.
func (u *Ui) drag(value string) (float32, *widgetState) {
	id := u.widgetID("#drag")
	st := u.ctx.stateOf(id)
	pad := u.ctx.Style.Padding
	w, h := u.measure(value, StyleBody)
	r := u.allocate(max(w+2*pad, u.ctx.Style.SliderWidth*0.4), h+2*pad)
	hot, _ := u.interact(id, r)

	var delta float32
	mx := u.ctx.in.MouseX
	switch {
	case u.ctx.in.MousePressed && u.ctx.active == id:
		st.lastX = mx
	case u.dragging(id):
		delta = mx - st.lastX
		st.lastX = mx
	}

	u.fill(r, u.widgetColor(id, hot || u.ctx.active == id))
	u.text(r.X+(r.W-w)*0.5, r.Y+pad, value, StyleBody)
	return delta, st
}

// DragFloat changes *v by speed per pixel dragged, clamped to [lo, hi] when
// lo < hi.
func (u *Ui) DragFloat(v *float32, lo, hi, speed float32) bool {
	delta, _ := u.drag(formatFloat(*v))
	if delta == 0 {
		return false
	}
	nv := *v + delta*speed
	if lo < hi {
		nv = clampf(nv, lo, hi)
	}
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// DragInt is DragFloat for integers. Fractional travel accumulates between
// frames.
func (u *Ui) DragInt(v *int32, lo, hi int32, speed float32) bool {
	delta, st := u.drag(strconv.Itoa(int(*v)))
	if delta == 0 {
		return false
	}
	st.dragAcc += delta * speed
	steps := int32(st.dragAcc)
	if steps == 0 {
		return false
	}
	st.dragAcc -= float32(steps)
	nv := *v + steps
	if lo < hi {
		nv = max(lo, min(hi, nv))
	}
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// TextEditOptions shape a text field.
type TextEditOptions struct {
	Multiline bool
	Code      bool
	Rows      int
}

// TextEdit edits *s while focused and reports whether it changed.
func (u *Ui) TextEdit(s *string, opts TextEditOptions) bool {
	id := u.widgetID("#textedit")
	c := u.ctx
	st := StyleBody
	if opts.Code {
		st = StyleMonospace
	}
	rows := max(opts.Rows, 1)
	if !opts.Multiline {
		rows = 1
	}
	pad := c.Style.Padding
	_, lh := u.measure("Ag", st)

	width := c.Style.TextEditWidth
	if opts.Multiline && u.layout == layoutVertical {
		width = max(width, u.max.W)
	}
	r := u.allocate(width, lh*float32(rows)+2*pad)
	hot, _ := u.interact(id, r)
	if hot && c.in.MousePressed {
		c.focus = id
		c.focusHit = true
	}

	changed := false
	if c.focus == id && u.enabled {
		changed = u.editText(s, opts)
	}

	u.fill(r, colors.Widget)
	border := colors.Border
	if c.focus == id {
		border = colors.Accent
	}
	if !u.invisible {
		strokeRect(u.p, r, u.tint(border))
	}

	lines := strings.Split(*s, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	y := r.Y + pad
	for _, line := range lines {
		u.text(r.X+pad, y, line, st)
		y += lh
	}
	if c.focus == id && (c.t.Milliseconds()/500)%2 == 0 {
		last := lines[len(lines)-1]
		cw, _ := u.measure(last, st)
		u.fill(Rect{X: r.X + pad + cw, Y: y - lh, W: 1, H: lh}, colors.TextStrong)
	}
	return changed
}

func (u *Ui) editText(s *string, opts TextEditOptions) bool {
	in := &u.ctx.in
	before := *s
	var b strings.Builder
	b.WriteString(*s)
	for _, r := range in.Typed {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()

	if in.KeyPressed(input.KeyBackspace) && out != "" {
		_, size := utf8.DecodeLastRuneInString(out)
		out = out[:len(out)-size]
	}
	if in.KeyPressed(input.KeyTab) && opts.Code {
		out += "    "
	}
	if in.KeyPressed(input.KeyEnter) {
		if opts.Multiline {
			out += "\n"
		} else {
			u.ctx.focus = 0
		}
	}
	if in.KeyPressed(input.KeyEscape) {
		u.ctx.focus = 0
	}
	if out == before {
		return false
	}
	*s = out
	return true
}
