package imm

import "github.com/hubastard/frameui/engine/colors"

type layout int

const (
	layoutVertical layout = iota
	layoutHorizontal
	layoutWrapped
)

type align int

const (
	alignStart align = iota
	alignCenter
)

// Ui places widgets inside one region. Children get their own Ui so style
// changes made inside a child never leak to its parent.
type Ui struct {
	ctx    *Ctx
	p      Painter
	id     ID
	layout layout
	align  align

	max              Rect
	cursorX, cursorY float32
	rowH             float32
	used             Rect
	last             Rect

	enabled   bool
	invisible bool
	opacity   float32
	inPopup   bool

	labels   map[string]int
	children int
	clicked  bool
}

func (u *Ui) IsEnabled() bool  { return u.enabled }
func (u *Ui) IsVisible() bool  { return !u.invisible }
func (u *Ui) Opacity() float32 { return u.opacity }

// LastRect is the rect of the most recently placed widget.
func (u *Ui) LastRect() Rect { return u.last }

// Used is the area covered by widgets so far.
func (u *Ui) Used() Rect { return u.used }

func (u *Ui) widgetID(label string) ID {
	if u.labels == nil {
		u.labels = make(map[string]int, 8)
	}
	n := u.labels[label]
	u.labels[label] = n + 1
	return makeID(u.id, label, n)
}

func (u *Ui) rowHeight() float32 {
	return u.ctx.lineHeight() + 2*u.ctx.Style.Padding
}

// allocate reserves a w by h rect at the cursor.
func (u *Ui) allocate(w, h float32) Rect {
	sp := u.ctx.Style.Spacing
	var r Rect
	switch u.layout {
	case layoutVertical:
		x := u.max.X
		if u.align == alignCenter && w < u.max.W {
			x += (u.max.W - w) * 0.5
		}
		r = Rect{X: x, Y: u.cursorY, W: w, H: h}
		u.cursorY += h + sp
	case layoutHorizontal:
		y := u.max.Y
		if rh := u.rowHeight(); u.align == alignCenter && h < rh {
			y += (rh - h) * 0.5
		}
		r = Rect{X: u.cursorX, Y: y, W: w, H: h}
		u.cursorX += w + sp
	case layoutWrapped:
		if u.cursorX > u.max.X && u.cursorX+w > u.max.Right() {
			u.cursorX = u.max.X
			u.cursorY += u.rowH + sp
			u.rowH = 0
		}
		r = Rect{X: u.cursorX, Y: u.cursorY, W: w, H: h}
		u.cursorX += w + sp
		u.rowH = max(u.rowH, h)
	}
	u.used = u.used.Union(r)
	u.last = r
	return r
}

// origin is where the next child region starts and how wide it may grow.
func (u *Ui) origin() Rect {
	switch u.layout {
	case layoutHorizontal:
		return Rect{X: u.cursorX, Y: u.max.Y, W: max(0, u.max.Right()-u.cursorX), H: u.max.H}
	case layoutWrapped:
		return Rect{X: u.cursorX, Y: u.cursorY, W: max(0, u.max.Right()-u.cursorX), H: u.max.H}
	default:
		return Rect{X: u.max.X, Y: u.cursorY, W: u.max.W, H: max(0, u.max.Bottom()-u.cursorY)}
	}
}

// advance moves the cursor past a rect that was placed at origin().
func (u *Ui) advance(r Rect) {
	sp := u.ctx.Style.Spacing
	switch u.layout {
	case layoutVertical:
		u.cursorY = r.Bottom() + sp
	case layoutHorizontal:
		u.cursorX = r.Right() + sp
	case layoutWrapped:
		u.cursorX = r.Right() + sp
		u.rowH = max(u.rowH, r.H)
	}
	u.used = u.used.Union(r)
	u.last = r
}

func (u *Ui) child(l layout, a align, area Rect) *Ui {
	u.children++
	return &Ui{
		ctx:       u.ctx,
		p:         u.p,
		id:        makeID(u.id, "#child", u.children),
		layout:    l,
		align:     a,
		max:       area,
		cursorX:   area.X,
		cursorY:   area.Y,
		enabled:   u.enabled,
		invisible: u.invisible,
		opacity:   u.opacity,
		inPopup:   u.inPopup,
	}
}

// region runs body in a child laid out with l and reserves the space it used.
func (u *Ui) region(l layout, a align, indent float32, body func(*Ui)) {
	o := u.origin()
	area := Rect{X: o.X + indent, Y: o.Y, W: max(0, o.W-indent), H: o.H}
	c := u.child(l, a, area)
	body(c)
	used := c.used
	if used.W == 0 && used.H == 0 {
		used = Rect{X: area.X, Y: area.Y}
	}
	u.advance(Rect{X: o.X, Y: o.Y, W: used.Right() - o.X, H: used.Bottom() - o.Y})
	u.clicked = u.clicked || c.clicked
}

func (u *Ui) Horizontal(body func(*Ui))         { u.region(layoutHorizontal, alignCenter, 0, body) }
func (u *Ui) HorizontalCentered(body func(*Ui)) { u.region(layoutHorizontal, alignCenter, 0, body) }
func (u *Ui) HorizontalTop(body func(*Ui))      { u.region(layoutHorizontal, alignStart, 0, body) }
func (u *Ui) HorizontalWrapped(body func(*Ui))  { u.region(layoutWrapped, alignStart, 0, body) }
func (u *Ui) Vertical(body func(*Ui))           { u.region(layoutVertical, alignStart, 0, body) }
func (u *Ui) VerticalCentered(body func(*Ui))   { u.region(layoutVertical, alignCenter, 0, body) }
func (u *Ui) Indent(body func(*Ui))             { u.region(layoutVertical, alignStart, u.ctx.Style.Indent, body) }

// Scope runs body in a child with the same layout, isolating style changes.
func (u *Ui) Scope(body func(*Ui)) { u.region(u.layout, u.align, 0, body) }

// Enabled runs body in a child that is disabled when enabled is false.
func (u *Ui) Enabled(enabled bool, body func(*Ui)) {
	u.region(u.layout, u.align, 0, func(c *Ui) {
		c.enabled = c.enabled && enabled
		body(c)
	})
}

// Group draws a framed box around body.
func (u *Ui) Group(body func(*Ui)) {
	pad := u.ctx.Style.Padding * 2
	o := u.origin()
	// The frame size is only known after body, so body paints into a
	// recorder that is replayed on top of the frame.
	bg := &overlay{base: u.p}
	inner := u.child(layoutVertical, alignStart, Rect{X: o.X + pad, Y: o.Y + pad, W: max(0, o.W-2*pad), H: max(0, o.H-2*pad)})
	inner.p = bg
	body(inner)

	used := inner.used
	if used.W == 0 && used.H == 0 {
		used = Rect{X: inner.max.X, Y: inner.max.Y}
	}
	frame := Rect{X: o.X, Y: o.Y, W: used.Right() + pad - o.X, H: used.Bottom() + pad - o.Y}
	if !u.invisible {
		u.p.FillRect(frame, u.tint(colors.Panel))
		strokeRect(u.p, frame, u.tint(colors.Border))
	}
	bg.flush()
	u.advance(frame)
	u.clicked = u.clicked || inner.clicked
}

// Collapsing draws a clickable header and runs body indented below it while
// the section is open. It reports whether body ran.
func (u *Ui) Collapsing(title string, body func(*Ui)) bool {
	id := u.widgetID("#collapsing:" + title)
	st := u.ctx.stateOf(id)

	var open bool
	u.region(layoutVertical, alignStart, 0, func(c *Ui) {
		arrow := "> "
		if st.open {
			arrow = "v "
		}
		s := StyleStrong
		w, h := c.measure(arrow+title, s)
		r := c.allocate(w+2*c.ctx.Style.Padding, h+2*c.ctx.Style.Padding)
		hot, clicked := c.interact(id, r)
		if hot {
			c.fill(r, colors.WidgetHot)
		}
		c.text(r.X+c.ctx.Style.Padding, r.Y+c.ctx.Style.Padding, arrow+title, s)
		if clicked {
			st.open = !st.open
		}
		open = st.open
		if open {
			c.Indent(body)
		}
	})
	return open
}

// Separator draws a thin line across the layout direction.
func (u *Ui) Separator() {
	sp := u.ctx.Style.Spacing
	if u.layout == layoutVertical {
		r := u.allocate(u.max.W, 1+sp)
		u.fill(Rect{X: r.X, Y: r.Y + sp*0.5, W: r.W, H: 1}, colors.Border)
		return
	}
	r := u.allocate(1+sp, u.rowHeight())
	u.fill(Rect{X: r.X + sp*0.5, Y: r.Y, W: 1, H: r.H}, colors.Border)
}

// AddSpace moves the cursor by amount along the layout direction.
func (u *Ui) AddSpace(amount float32) {
	if amount <= 0 {
		return
	}
	if u.layout == layoutVertical {
		u.cursorY += amount
	} else {
		u.cursorX += amount
	}
}

// SetInvisible hides widgets added after the call; they still take space.
func (u *Ui) SetInvisible() { u.invisible = true }

// Disable greys out widgets added after the call and ignores their input.
func (u *Ui) Disable() { u.enabled = false }

// SetOpacity multiplies the opacity of widgets added after the call.
func (u *Ui) SetOpacity(a float32) { u.opacity *= clampf(a, 0, 1) }

// interact reports whether r is hovered and whether it was clicked.
func (u *Ui) interact(id ID, r Rect) (hot, clicked bool) {
	c := u.ctx
	if !u.enabled || u.invisible {
		return false, false
	}
	mx, my := c.in.MouseX, c.in.MouseY
	if !u.inPopup && c.block.Contains(mx, my) {
		return false, false
	}
	hot = r.Contains(mx, my)
	if hot && c.in.MousePressed {
		c.active = id
	}
	if c.in.MouseReleased && c.active == id && hot {
		clicked = true
		u.clicked = true
	}
	return hot, clicked
}

// dragging reports whether id holds the mouse.
func (u *Ui) dragging(id ID) bool {
	return u.enabled && u.ctx.active == id && u.ctx.in.MouseDown
}

func (u *Ui) tint(c colors.Color) colors.Color {
	if !u.enabled {
		c = c.Fade(0.5)
	}
	return c.Fade(u.opacity)
}

func (u *Ui) fill(r Rect, c colors.Color) {
	if u.invisible {
		return
	}
	u.p.FillRect(r, u.tint(c))
}

func (u *Ui) measure(s string, st TextStyle) (float32, float32) {
	return u.p.Measure(s, st.Font, u.ctx.fontSize(st))
}

func (u *Ui) text(x, y float32, s string, st TextStyle) {
	if u.invisible || s == "" {
		return
	}
	u.p.Text(x, y, s, st.Font, u.ctx.fontSize(st), u.tint(st.Color))
}
