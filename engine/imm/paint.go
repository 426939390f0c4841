package imm

import (
	"image"

	"github.com/hubastard/frameui/engine/colors"
)

// Painter draws primitives for the widget layer.
type Painter interface {
	FillRect(r Rect, c colors.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float32, s string, font Font, size float32, c colors.Color)
	Measure(s string, font Font, size float32) (w, h float32)
	Image(r Rect, img image.Image, tint colors.Color)
}

// overlay records painting for popups and replays it after the rest of the
// frame so popups end up on top.
type overlay struct {
	base Painter
	ops  []func(p Painter)
}

func (o *overlay) FillRect(r Rect, c colors.Color) {
	o.ops = append(o.ops, func(p Painter) { p.FillRect(r, c) })
}

func (o *overlay) Text(x, y float32, s string, font Font, size float32, c colors.Color) {
	o.ops = append(o.ops, func(p Painter) { p.Text(x, y, s, font, size, c) })
}

func (o *overlay) Measure(s string, font Font, size float32) (float32, float32) {
	return o.base.Measure(s, font, size)
}

func (o *overlay) Image(r Rect, img image.Image, tint colors.Color) {
	o.ops = append(o.ops, func(p Painter) { p.Image(r, img, tint) })
}

func (o *overlay) flush() {
	for _, op := range o.ops {
		op(o.base)
	}
	clear(o.ops)
	o.ops = o.ops[:0]
}

// strokeRect outlines r with 1px lines.
func strokeRect(p Painter, r Rect, c colors.Color) {
	p.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	p.FillRect(Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, c)
	p.FillRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	p.FillRect(Rect{X: r.Right() - 1, Y: r.Y, W: 1, H: r.H}, c)
}
