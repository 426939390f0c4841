package paint

import (
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/frameui/engine/colors"
	"github.com/hubastard/frameui/engine/gfx/renderer2d"
	"github.com/hubastard/frameui/engine/imm"
)

type fakeBackend struct {
	next    renderer2d.Texture
	live    map[renderer2d.Texture]bool
	quads   int
	failAt  int
	created int
}

func newFakeBackend() *fakeBackend { return &fakeBackend{live: map[renderer2d.Texture]bool{}} }

func (b *fakeBackend) CreateTexture(w, h int, rgba []byte, _ renderer2d.Filter) (renderer2d.Texture, error) {
	b.created++
	if b.failAt > 0 && b.created == b.failAt {
		return 0, errors.New("out of memory")
	}
	if len(rgba) != w*h*4 {
		return 0, errors.New("bad pixel buffer")
	}
	b.next++
	b.live[b.next] = true
	return b.next, nil
}

func (b *fakeBackend) DeleteTexture(t renderer2d.Texture) { delete(b.live, t) }

func (b *fakeBackend) DrawBatch(_ [16]float32, _ []float32, inds []uint32, _ []renderer2d.Texture) {
	b.quads += len(inds) / 6
}

func newPainter(t *testing.T) (*Painter, *renderer2d.Renderer2D, *fakeBackend) {
	t.Helper()
	b := newFakeBackend()
	rd, err := renderer2d.New(b, 0)
	require.NoError(t, err)
	p, err := New(rd, b, 16, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p, rd, b
}

func TestNewUploadsBothFonts(t *testing.T) {
	_, _, b := newPainter(t)
	// White texture plus two atlases.
	assert.Len(t, b.live, 3)
}

func TestTextEmitsGlyphQuads(t *testing.T) {
	p, rd, b := newPainter(t)

	rd.BeginScene(800, 600)
	p.Text(0, 0, "Hi there", imm.FontProportional, 16, colors.Text)
	p.Text(0, 20, "mono", imm.FontMono, 16, colors.Text)
	rd.EndScene()

	// Spaces have no bitmap.
	assert.Equal(t, 7+4, b.quads)
}

func TestMeasureScalesWithSize(t *testing.T) {
	p, _, _ := newPainter(t)
	w16, h16 := p.Measure("hello", imm.FontProportional, 16)
	w32, h32 := p.Measure("hello", imm.FontProportional, 32)
	assert.InDelta(t, 2*w16, w32, 0.01)
	assert.InDelta(t, 2*h16, h32, 0.01)

	mw1, _ := p.Measure("i", imm.FontMono, 16)
	mw2, _ := p.Measure("W", imm.FontMono, 16)
	assert.InDelta(t, mw1, mw2, 0.01)
}

func TestFillRectSkipsInvisible(t *testing.T) {
	p, rd, b := newPainter(t)
	rd.BeginScene(100, 100)
	p.FillRect(imm.Rect{W: 10, H: 10}, colors.Transparent)
	p.FillRect(imm.Rect{W: 0, H: 10}, colors.White)
	p.FillRect(imm.Rect{W: 10, H: 10}, colors.White)
	rd.EndScene()
	assert.Equal(t, 1, b.quads)
}

func TestImageTexturesAreCached(t *testing.T) {
	p, rd, b := newPainter(t)
	p.cap = 2
	imgs := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 4, 4)),
		image.NewGray(image.Rect(0, 0, 2, 3)),
		image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}

	rd.BeginScene(100, 100)
	p.Image(imm.Rect{W: 4, H: 4}, imgs[0], colors.White)
	p.Image(imm.Rect{W: 4, H: 4}, imgs[0], colors.White)
	require.Len(t, p.textures, 1)

	p.Image(imm.Rect{W: 2, H: 3}, imgs[1], colors.White)
	p.Image(imm.Rect{W: 1, H: 1}, imgs[2], colors.White)
	rd.EndScene()

	assert.Len(t, p.textures, 2)
	assert.NotContains(t, p.textures, imgs[0])
	assert.Equal(t, 4, b.quads)
	// White, two atlases and two cached images.
	assert.Len(t, b.live, 5)
}

func TestImageUploadFailureDrawsPlaceholder(t *testing.T) {
	p, rd, b := newPainter(t)
	b.failAt = b.created + 1

	rd.BeginScene(100, 100)
	p.Image(imm.Rect{W: 4, H: 4}, image.NewRGBA(image.Rect(0, 0, 4, 4)), colors.White)
	rd.EndScene()
	assert.Equal(t, 1, b.quads)
	assert.Empty(t, p.textures)
}
