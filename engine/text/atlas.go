// Package text rasterizes fonts into glyph atlases and lays out strings
// against them. It does not touch the GPU: callers upload Atlas.Image and
// draw the quads Layout emits.
package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune    = rune(32)
	lastRune     = rune(255)
	padding      = 2
	maxAtlasSize = 4096
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a rasterized font at SizePx with its glyph metrics.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	// Image holds white glyphs with alpha coverage.
	Image *image.RGBA

	face font.Face
	kern map[rune]map[rune]float32
}

// Regular builds an atlas of the Go Regular font.
func Regular(sizePx float32) (*Atlas, error) { return Build(goregular.TTF, sizePx) }

// Mono builds an atlas of the Go Mono font.
func Mono(sizePx float32) (*Atlas, error) { return Build(gomono.TTF, sizePx) }

// Build rasterizes Latin-1 glyphs of the TrueType/OpenType font ttf.
func Build(ttf []byte, sizePx float32) (*Atlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, lastRune-firstRune+1)
	for r := firstRune; r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   r,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	// Shelf packer: rows left to right, doubling the atlas until it fits.
	size := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+padding > size {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if g.w+2*padding > size || y+g.h+padding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > maxAtlasSize {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			// The drawer's dot sits on the baseline; shift by the bearings so
			// the bitmap lands at p.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.U0 = float32(p.X) / float32(size)
			gl.V0 = float32(p.Y) / float32(size)
			gl.U1 = float32(p.X+g.w) / float32(size)
			gl.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = gl
	}
	kern := make(map[rune]map[rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				if kern[a.r] == nil {
					kern[a.r] = make(map[rune]float32)
				}
				kern[a.r][b.r] = float32(dx) / 64
			}
		}
	}

	return &Atlas{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Image:  dst,
		face:   face,
		kern:   kern,
	}, nil
}

// Close releases the font face.
func (a *Atlas) Close() {
	if a != nil && a.face != nil {
		_ = a.face.Close()
		a.face = nil
	}
}
