// Package paint implements the widget painter on top of the 2D batch
// renderer and the glyph atlases.
package paint

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hubastard/frameui/engine/assets"
	"github.com/hubastard/frameui/engine/colors"
	"github.com/hubastard/frameui/engine/gfx/renderer2d"
	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/text"
)

// DefaultTextureCap bounds the number of image textures kept on the GPU.
const DefaultTextureCap = 128

type font struct {
	atlas *text.Atlas
	tex   renderer2d.Texture
}

// Painter implements imm.Painter.
type Painter struct {
	rd    *renderer2d.Renderer2D
	b     renderer2d.Backend
	fonts [2]font
	log   *slog.Logger

	textures map[image.Image]renderer2d.Texture
	order    []image.Image
	cap      int
}

var _ imm.Painter = (*Painter)(nil)

// New rasterizes the proportional and monospace fonts at fontSize and
// uploads them through b.
func New(rd *renderer2d.Renderer2D, b renderer2d.Backend, fontSize float32, log *slog.Logger) (*Painter, error) {
	if log == nil {
		log = slog.Default()
	}
	p := &Painter{
		rd:       rd,
		b:        b,
		log:      log,
		textures: make(map[image.Image]renderer2d.Texture),
		cap:      DefaultTextureCap,
	}
	builders := [2]func(float32) (*text.Atlas, error){text.Regular, text.Mono}
	for i, build := range builders {
		a, err := build(fontSize)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("font atlas: %w", err)
		}
		bounds := a.Image.Bounds()
		tex, err := p.b.CreateTexture(bounds.Dx(), bounds.Dy(), a.Image.Pix, renderer2d.FilterLinear)
		if err != nil {
			a.Close()
			p.Close()
			return nil, fmt.Errorf("upload font atlas: %w", err)
		}
		p.fonts[i] = font{atlas: a, tex: tex}
	}
	return p, nil
}

// Close releases the atlases and every texture the painter uploaded.
func (p *Painter) Close() {
	for i := range p.fonts {
		if p.fonts[i].atlas != nil {
			p.fonts[i].atlas.Close()
			p.b.DeleteTexture(p.fonts[i].tex)
			p.fonts[i] = font{}
		}
	}
	for _, img := range p.order {
		p.b.DeleteTexture(p.textures[img])
	}
	clear(p.textures)
	p.order = nil
}

func (p *Painter) font(f imm.Font) font {
	if f == imm.FontMono {
		return p.fonts[1]
	}
	return p.fonts[0]
}

func (p *Painter) FillRect(r imm.Rect, c colors.Color) {
	if r.W <= 0 || r.H <= 0 || c[3] <= 0 {
		return
	}
	p.rd.DrawRect(r.X, r.Y, r.W, r.H, c)
}

func (p *Painter) Text(x, y float32, s string, f imm.Font, size float32, c colors.Color) {
	ft := p.font(f)
	if ft.atlas == nil || c[3] <= 0 {
		return
	}
	ft.atlas.Layout(x, y, s, size, func(q text.Quad) {
		p.rd.DrawSubTex(q.X, q.Y, q.W, q.H, ft.tex, [4]float32{q.U0, q.V0, q.U1, q.V1}, c)
	})
}

func (p *Painter) Measure(s string, f imm.Font, size float32) (float32, float32) {
	ft := p.font(f)
	if ft.atlas == nil {
		return 0, size
	}
	return ft.atlas.Measure(s, size)
}

func (p *Painter) Image(r imm.Rect, img image.Image, tint colors.Color) {
	tex, err := p.texture(img)
	if err != nil {
		p.log.Warn("image upload failed", "err", err)
		p.FillRect(r, colors.Border)
		return
	}
	p.rd.DrawTexturedRect(r.X, r.Y, r.W, r.H, tex, tint)
}

// texture returns the GPU copy of img, uploading it on first use.
func (p *Painter) texture(img image.Image) (renderer2d.Texture, error) {
	if tex, ok := p.textures[img]; ok {
		return tex, nil
	}
	rgba := assets.ToRGBA(img)
	b := rgba.Bounds()
	tex, err := p.b.CreateTexture(b.Dx(), b.Dy(), rgba.Pix, renderer2d.FilterLinear)
	if err != nil {
		return 0, err
	}
	if len(p.order) >= p.cap {
		old := p.order[0]
		p.order = p.order[1:]
		p.b.DeleteTexture(p.textures[old])
		delete(p.textures, old)
	}
	p.textures[img] = tex
	p.order = append(p.order, img)
	return tex, nil
}
