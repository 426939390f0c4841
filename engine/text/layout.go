package text

// Quad is one glyph placed on screen, top-left origin, Y down.
type Quad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
}

func (a *Atlas) scale(size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / a.SizePx
}

// LineHeight is the distance between baselines at size.
func (a *Atlas) LineHeight(size float32) float32 {
	return (a.Ascent - a.Descent + a.LineGap) * a.scale(size)
}

// Layout places s with its top-left corner at (x, y), drawn at size pixels,
// and calls emit for every visible glyph.
func (a *Atlas) Layout(x, y float32, s string, size float32, emit func(q Quad)) {
	sc := a.scale(size)
	penX := x
	baseY := y + a.Ascent*sc
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += a.LineHeight(size)
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			if sp, ok := a.Glyphs[' ']; ok {
				penX += sp.Advance * sc
			}
			prev = r
			continue
		}
		if prev >= 0 {
			penX += a.kern[prev][r] * sc
		}
		if g.W > 0 && g.H > 0 {
			emit(Quad{
				X:  penX + g.BearingX*sc,
				Y:  baseY - g.BearingY*sc,
				W:  float32(g.W) * sc,
				H:  float32(g.H) * sc,
				U0: g.U0,
				V0: g.V0,
				U1: g.U1,
				V1: g.V1,
			})
		}
		penX += g.Advance * sc
		prev = r
	}
}

// Measure returns the size of s drawn at size pixels.
func (a *Atlas) Measure(s string, size float32) (width, height float32) {
	sc := a.scale(size)
	lineH := a.LineHeight(size)
	height = lineH

	var lineW float32
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			if sp, ok := a.Glyphs[' ']; ok {
				lineW += sp.Advance * sc
			}
			prev = r
			continue
		}
		if prev >= 0 {
			lineW += a.kern[prev][r] * sc
		}
		lineW += g.Advance * sc
		prev = r
	}
	return max(width, lineW), height
}
