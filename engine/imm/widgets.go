package imm

import (
	"math"

	"github.com/hubastard/frameui/engine/colors"
)

// Text draws s in style st.
func (u *Ui) Text(s string, st TextStyle) {
	w, h := u.measure(s, st)
	pad := float32(0)
	if st.Bg[3] > 0 {
		pad = u.ctx.Style.Padding * 0.5
	}
	r := u.allocate(w+2*pad, h)
	if pad > 0 {
		u.fill(r, st.Bg)
	}
	u.text(r.X+pad, r.Y, s, st)
}

func (u *Ui) Label(s string)     { u.Text(s, StyleBody) }
func (u *Ui) Heading(s string)   { u.Text(s, StyleHeading) }
func (u *Ui) Monospace(s string) { u.Text(s, StyleMonospace) }
func (u *Ui) Small(s string)     { u.Text(s, StyleSmall) }
func (u *Ui) Strong(s string)    { u.Text(s, StyleStrong) }
func (u *Ui) Weak(s string)      { u.Text(s, StyleWeak) }
func (u *Ui) Code(s string)      { u.Text(s, StyleCode) }

func (u *Ui) button(label string, padX, padY float32) bool {
	id := u.widgetID("#button:" + label)
	w, h := u.measure(label, StyleBody)
	r := u.allocate(w+2*padX, h+2*padY)
	hot, clicked := u.interact(id, r)
	u.fill(r, u.widgetColor(id, hot))
	u.text(r.X+padX, r.Y+padY, label, StyleBody)
	return clicked
}

// Button draws a framed button and reports whether it was clicked.
func (u *Ui) Button(label string) bool {
	p := u.ctx.Style.Padding
	return u.button(label, 2*p, p)
}

// SmallButton is a Button with less padding.
func (u *Ui) SmallButton(label string) bool { return u.button(label, u.ctx.Style.Padding*0.5, 0) }

// Link draws clickable text.
func (u *Ui) Link(label string) bool {
	id := u.widgetID("#link:" + label)
	w, h := u.measure(label, StyleLink)
	r := u.allocate(w, h)
	hot, clicked := u.interact(id, r)
	u.text(r.X, r.Y, label, StyleLink)
	if hot {
		u.fill(Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, colors.Link)
	}
	return clicked
}

// HyperlinkTo draws label as a link that opens url when clicked.
func (u *Ui) HyperlinkTo(label, url string) {
	if u.Link(label) && u.ctx.OpenURL != nil {
		u.ctx.OpenURL(url)
	}
}

func (u *Ui) Hyperlink(url string) { u.HyperlinkTo(url, url) }

// ImageAndTextButton draws a button with an icon left of the text.
func (u *Ui) ImageAndTextButton(src, label string) bool {
	id := u.widgetID("#imgbutton:" + src + label)
	pad := u.ctx.Style.Padding
	w, h := u.measure(label, StyleBody)
	icon := h
	r := u.allocate(icon+w+4*pad, h+2*pad)
	hot, clicked := u.interact(id, r)
	u.fill(r, u.widgetColor(id, hot))
	u.image(Rect{X: r.X + pad, Y: r.Y + pad, W: icon, H: icon}, src)
	u.text(r.X+icon+3*pad, r.Y+pad, label, StyleBody)
	return clicked
}

func (u *Ui) widgetColor(id ID, hot bool) colors.Color {
	switch {
	case u.ctx.active == id && hot:
		return colors.WidgetActive
	case hot:
		return colors.WidgetHot
	default:
		return colors.Widget
	}
}

// check draws a box followed by label and reports a click on either.
func (u *Ui) check(kind, label string, on bool, round bool) bool {
	id := u.widgetID(kind + label)
	pad := u.ctx.Style.Padding
	w, h := u.measure(label, StyleBody)
	r := u.allocate(h+pad+w, h)
	hot, clicked := u.interact(id, r)

	box := Rect{X: r.X, Y: r.Y, W: h, H: h}
	u.fill(box, u.widgetColor(id, hot))
	if on {
		inset := h * 0.25
		if round {
			inset = h * 0.3
		}
		u.fill(box.Inset(inset), colors.Accent)
	}
	u.text(r.X+h+pad, r.Y, label, StyleBody)
	return clicked
}

// Checkbox toggles *v when clicked and reports whether it changed.
func (u *Ui) Checkbox(v *bool, label string) bool {
	if u.check("#checkbox:", label, *v, false) {
		*v = !*v
		return true
	}
	return false
}

// RadioValue sets *cur to alt when clicked.
func (u *Ui) RadioValue(cur *int32, alt int32, label string) bool {
	if u.check("#radio:", label, *cur == alt, true) && *cur != alt {
		*cur = alt
		return true
	}
	return false
}

// Selectable draws label highlighted when selected and reports a click.
func (u *Ui) Selectable(selected bool, label string) bool {
	id := u.widgetID("#selectable:" + label)
	pad := u.ctx.Style.Padding
	w, h := u.measure(label, StyleBody)
	width := w + 2*pad
	if u.inPopup && u.layout == layoutVertical {
		width = max(width, u.max.W)
	}
	r := u.allocate(width, h+2*pad)
	hot, clicked := u.interact(id, r)
	switch {
	case selected:
		u.fill(r, colors.Accent.Fade(0.6))
	case hot:
		u.fill(r, colors.WidgetHot)
	}
	u.text(r.X+pad, r.Y+pad, label, StyleBody)
	return clicked
}

// SelectableValue sets *cur to alt when clicked.
func (u *Ui) SelectableValue(cur *int32, alt int32, label string) bool {
	if u.Selectable(*cur == alt, label) && *cur != alt {
		*cur = alt
		return true
	}
	return false
}

// ToggleValue flips *v when clicked.
func (u *Ui) ToggleValue(v *bool, label string) bool {
	if u.Selectable(*v, label) {
		*v = !*v
		return true
	}
	return false
}

// Progress draws a bar filled to v in [0, 1].
func (u *Ui) Progress(v float32) {
	v = clampf(v, 0, 1)
	h := u.rowHeight() * 0.8
	width := u.ctx.Style.SliderWidth
	if u.layout == layoutVertical {
		width = u.max.W
	}
	r := u.allocate(width, h)
	u.fill(r, colors.Widget)
	u.fill(Rect{X: r.X, Y: r.Y, W: r.W * v, H: r.H}, colors.Accent)
}

// Spinner draws a busy indicator animated by frame time.
func (u *Ui) Spinner() {
	size := u.ctx.lineHeight()
	r := u.allocate(size, size)
	u.spinner(r)
}

func (u *Ui) spinner(r Rect) {
	const dots = 8
	cx, cy := r.Center()
	radius := min(r.W, r.H) * 0.4
	dot := max(2, radius*0.35)
	lead := int(u.ctx.t.Milliseconds()/100) % dots
	for i := range dots {
		a := float64(i) / dots * 2 * math.Pi
		x := cx + radius*float32(math.Cos(a)) - dot*0.5
		y := cy + radius*float32(math.Sin(a)) - dot*0.5
		fade := float32((i-lead+dots)%dots+1) / dots
		u.fill(Rect{X: x, Y: y, W: dot, H: dot}, colors.Text.Fade(fade))
	}
}

// Image draws the image at src at its natural size, shrunk to fit the
// available width.
func (u *Ui) Image(src string) {
	img, err := u.load(src)
	switch {
	case err == nil && img != nil:
		b := img.Bounds()
		w, h := float32(b.Dx()), float32(b.Dy())
		if avail := u.origin().W; w > avail && avail > 0 {
			h *= avail / w
			w = avail
		}
		r := u.allocate(w, h)
		if !u.invisible {
			u.p.Image(r, img, u.tint(colors.White))
		}
	case u.pending(err):
		u.Spinner()
	default:
		u.Text("[image: "+src+"]", StyleWeak)
	}
}

func (u *Ui) image(r Rect, src string) {
	img, err := u.load(src)
	switch {
	case err == nil && img != nil:
		if !u.invisible {
			u.p.Image(r, img, u.tint(colors.White))
		}
	case u.pending(err):
		u.spinner(r)
	default:
		u.fill(r, colors.Border)
	}
}

func (u *Ui) pending(err error) bool {
	return err != nil && u.ctx.IsPending != nil && u.ctx.IsPending(err)
}
