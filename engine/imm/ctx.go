package imm

import (
	"image"
	"time"

	"github.com/hubastard/frameui/engine/input"
)

type widgetState struct {
	open    bool
	dragAcc float32
	lastX   float32
	frame   uint64
}

// Ctx holds widget state that survives between frames.
type Ctx struct {
	Style Style
	// Images resolves an image source. It may return an error wrapping a
	// pending marker; Image draws a spinner until IsPending reports false.
	Images    func(src string) (image.Image, error)
	IsPending func(err error) bool
	// OpenURL is called when a hyperlink is clicked.
	OpenURL func(url string)

	p     Painter
	over  *overlay
	in    input.Frame
	t     time.Duration
	frame uint64

	state  map[ID]*widgetState
	active ID
	focus  ID

	focusHit bool

	popup       ID
	popupSeen   bool
	popupAnchor Rect
	popupRect   Rect
	block       Rect
}

func NewCtx(p Painter, style Style) *Ctx {
	return &Ctx{
		Style: style,
		p:     p,
		over:  &overlay{base: p},
		state: make(map[ID]*widgetState, 256),
	}
}

// Begin starts a frame covering screen and returns its root Ui.
func (c *Ctx) Begin(screen Rect, in input.Frame, t time.Duration) *Ui {
	c.in = in
	c.t = t
	c.frame++
	c.focusHit = false
	c.popupSeen = false
	c.popupRect = Rect{}

	area := screen.Inset(c.Style.Padding * 2)
	return &Ui{
		ctx:     c,
		p:       c.p,
		id:      ID(1),
		layout:  layoutVertical,
		max:     area,
		cursorX: area.X,
		cursorY: area.Y,
		enabled: true,
		opacity: 1,
	}
}

// End paints popups over the frame and settles focus, popup and drag state.
func (c *Ctx) End() {
	c.over.flush()

	if c.in.MousePressed {
		if c.focus != 0 && !c.focusHit {
			c.focus = 0
		}
		mx, my := c.in.MouseX, c.in.MouseY
		if c.popup != 0 && !c.popupRect.Contains(mx, my) && !c.popupAnchor.Contains(mx, my) {
			c.popup = 0
		}
	}
	if c.popup != 0 && !c.popupSeen {
		c.popup = 0
	}
	if c.in.MouseReleased || !c.in.MouseDown {
		c.active = 0
	}
	c.block = Rect{}
	if c.popup != 0 {
		c.block = c.popupRect
	}

	// Forget widgets that have not been seen for a while.
	if c.frame%600 == 0 {
		for id, st := range c.state {
			if c.frame-st.frame > 600 {
				delete(c.state, id)
			}
		}
	}
}

// Focused reports whether a text field holds keyboard focus.
func (c *Ctx) Focused() bool { return c.focus != 0 }

// PopupOpen reports whether a popup is open.
func (c *Ctx) PopupOpen() bool { return c.popup != 0 }

func (c *Ctx) stateOf(id ID) *widgetState {
	st, ok := c.state[id]
	if !ok {
		st = &widgetState{}
		c.state[id] = st
	}
	st.frame = c.frame
	return st
}

func (c *Ctx) fontSize(st TextStyle) float32 {
	s := st.Scale
	if s == 0 {
		s = 1
	}
	return c.Style.FontSize * s
}

func (c *Ctx) lineHeight() float32 {
	_, h := c.p.Measure("Ag", FontProportional, c.Style.FontSize)
	return h
}
