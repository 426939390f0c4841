// Package imm is a small immediate-mode widget layer. Widgets are laid out
// with a cursor, interact against the current input frame and paint through
// a Painter, so the package has no GPU or window dependency.
package imm

import (
	"encoding/binary"
	"hash/fnv"
)

// Rect is an axis-aligned rectangle, top-left origin, Y down.
type Rect struct{ X, Y, W, H float32 }

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() (float32, float32) { return r.X + r.W*0.5, r.Y + r.H*0.5 }

// Union returns the smallest rect containing r and o. An empty r yields o.
func (r Rect) Union(o Rect) Rect {
	if r.W == 0 && r.H == 0 && r.X == 0 && r.Y == 0 {
		return o
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(0, r.W-2*d), H: max(0, r.H-2*d)}
}

// ID identifies a widget across frames.
type ID uint64

func makeID(parent ID, label string, n int) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(label))
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])
	return ID(h.Sum64())
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
