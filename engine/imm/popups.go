package imm

import (
	"strconv"
	"time"

	"github.com/hubastard/frameui/engine/colors"
)

// popup runs body in a box below anchor while id owns the open popup. It
// reports whether anything inside was clicked.
func (u *Ui) popup(id ID, anchor Rect, width float32, body func(*Ui)) bool {
	c := u.ctx
	if c.popup != id {
		return false
	}
	c.popupSeen = true
	c.popupAnchor = anchor

	pad := c.Style.Padding
	area := Rect{X: anchor.X, Y: anchor.Bottom() + 2, W: width, H: 1 << 16}
	content := &overlay{base: c.over}
	pu := &Ui{
		ctx:     c,
		p:       content,
		id:      makeID(id, "#popup", 0),
		layout:  layoutVertical,
		max:     area.Inset(pad),
		enabled: u.enabled,
		opacity: u.opacity,
		inPopup: true,
	}
	pu.cursorX, pu.cursorY = pu.max.X, pu.max.Y
	body(pu)

	used := pu.used
	if used.W == 0 && used.H == 0 {
		used = Rect{X: pu.max.X, Y: pu.max.Y}
	}
	box := Rect{X: area.X, Y: area.Y, W: width, H: used.Bottom() + pad - area.Y}
	c.over.FillRect(box, colors.Panel.Fade(u.opacity))
	strokeRect(c.over, box, colors.Border.Fade(u.opacity))
	content.flush()
	c.popupRect = box
	return pu.clicked
}

func (u *Ui) togglePopup(id ID) {
	if u.ctx.popup == id {
		u.ctx.popup = 0
		return
	}
	u.ctx.popup = id
}

// ComboBox shows selected in a closed box labelled label. Clicking it opens
// a popup list filled by body; a click inside the list closes it.
func (u *Ui) ComboBox(label, selected string, body func(list *Ui)) {
	id := u.widgetID("#combo:" + label)
	pad := u.ctx.Style.Padding
	text := selected + "  v"
	w, h := u.measure(text, StyleBody)
	lw, _ := u.measure(label, StyleBody)
	boxW := max(w+2*pad, u.ctx.Style.SliderWidth*0.6)
	r := u.allocate(boxW+pad+lw, h+2*pad)
	box := Rect{X: r.X, Y: r.Y, W: boxW, H: r.H}

	hot, clicked := u.interact(id, box)
	if clicked {
		u.togglePopup(id)
	}
	u.fill(box, u.widgetColor(id, hot || u.ctx.popup == id))
	u.text(box.X+pad, box.Y+pad, text, StyleBody)
	u.text(box.Right()+pad, box.Y+pad, label, StyleBody)

	if u.popup(id, box, max(boxW, u.ctx.Style.PopupWidth), body) {
		u.ctx.popup = 0
	}
}

// ColorEditRGB shows a swatch that opens RGB sliders.
func (u *Ui) ColorEditRGB(rgb *[3]float32) bool {
	id := u.widgetID("#color")
	lh := u.ctx.lineHeight()
	r := u.allocate(2*lh, lh)
	hot, clicked := u.interact(id, r)
	if clicked {
		u.togglePopup(id)
	}
	u.fill(r, colors.RGB(*rgb))
	border := colors.Border
	if hot {
		border = colors.WidgetActive
	}
	if !u.invisible {
		strokeRect(u.p, r, u.tint(border))
	}

	changed := false
	u.popup(id, r, u.ctx.Style.PopupWidth+u.ctx.Style.SliderWidth*0.3, func(p *Ui) {
		for i, name := range [3]string{"R", "G", "B"} {
			if p.SliderFloat(&rgb[i], 0, 1, name) {
				changed = true
			}
		}
	})
	return changed
}

func daysIn(year int, month time.Month) int32 {
	return int32(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day())
}

// DatePickerButton shows *d as YYYY-MM-DD and opens a picker when clicked.
// The time of day and location of *d are kept.
func (u *Ui) DatePickerButton(d *time.Time) bool {
	id := u.widgetID("#date")
	pad := u.ctx.Style.Padding
	text := d.Format(time.DateOnly)
	w, h := u.measure(text, StyleBody)
	r := u.allocate(w+4*pad, h+2*pad)
	hot, clicked := u.interact(id, r)
	if clicked {
		u.togglePopup(id)
	}
	u.fill(r, u.widgetColor(id, hot || u.ctx.popup == id))
	u.text(r.X+2*pad, r.Y+pad, text, StyleBody)

	y, m, day := d.Date()
	year, month, dom := int32(y), int32(m), int32(day)
	u.popup(id, r, u.ctx.Style.PopupWidth, func(p *Ui) {
		p.Horizontal(func(row *Ui) {
			row.Label("Year")
			row.DragInt(&year, 1, 9999, 0.1)
		})
		p.Horizontal(func(row *Ui) {
			row.Label("Month")
			row.DragInt(&month, 1, 12, 0.05)
		})
		p.Horizontal(func(row *Ui) {
			row.Label("Day")
			row.DragInt(&dom, 1, daysIn(int(year), time.Month(month)), 0.1)
		})
		p.Weak(strconv.Itoa(int(year)) + " / " + time.Month(month).String())
	})
	dom = min(dom, daysIn(int(year), time.Month(month)))
	if year == int32(y) && month == int32(m) && dom == int32(day) {
		return false
	}
	hh, mm, ss := d.Clock()
	*d = time.Date(int(year), time.Month(month), int(dom), hh, mm, ss, d.Nanosecond(), d.Location())
	return true
}
