package renderer2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/frameui/engine/colors"
)

type batch struct {
	quads    int
	verts    []float32
	textures []Texture
}

type fakeBackend struct {
	next    Texture
	batches []batch
}

func (b *fakeBackend) CreateTexture(int, int, []byte, Filter) (Texture, error) {
	b.next++
	return b.next, nil
}

func (b *fakeBackend) DeleteTexture(Texture) {}

func (b *fakeBackend) DrawBatch(_ [16]float32, verts []float32, inds []uint32, textures []Texture) {
	b.batches = append(b.batches, batch{
		quads:    len(inds) / indsPerQuad,
		verts:    append([]float32(nil), verts...),
		textures: append([]Texture(nil), textures...),
	})
}

func TestSolidRectsShareOneBatch(t *testing.T) {
	b := &fakeBackend{}
	rd, err := New(b, 0)
	require.NoError(t, err)

	rd.BeginScene(800, 600)
	for range 10 {
		rd.DrawRect(0, 0, 10, 10, colors.White)
	}
	rd.EndScene()

	require.Len(t, b.batches, 1)
	assert.Equal(t, 10, b.batches[0].quads)
	assert.Equal(t, []Texture{rd.White()}, b.batches[0].textures)
	assert.Equal(t, Statistics{DrawCalls: 1, QuadCount: 10, TextureCount: 1}, rd.Stats())
	assert.Equal(t, 40, rd.Stats().TotalVertexCount())
}

func TestTextureSlotsOverflowFlushes(t *testing.T) {
	b := &fakeBackend{}
	rd, err := New(b, 0)
	require.NoError(t, err)

	rd.BeginScene(800, 600)
	for i := range MaxTexSlots + 2 {
		rd.DrawTexturedRect(0, 0, 1, 1, Texture(100+i), colors.White)
	}
	rd.EndScene()

	require.Len(t, b.batches, 2)
	assert.Len(t, b.batches[0].textures, MaxTexSlots)
	assert.Equal(t, MaxTexSlots-1, b.batches[0].quads)
	assert.Equal(t, 3, b.batches[1].quads)
}

func TestMaxQuadsFlushes(t *testing.T) {
	b := &fakeBackend{}
	rd, err := New(b, 4)
	require.NoError(t, err)

	rd.BeginScene(100, 100)
	for range 9 {
		rd.DrawRect(0, 0, 1, 1, colors.Black)
	}
	rd.EndScene()

	require.Len(t, b.batches, 3)
	assert.Equal(t, []int{4, 4, 1}, []int{b.batches[0].quads, b.batches[1].quads, b.batches[2].quads})
}

func TestEmptySceneDrawsNothing(t *testing.T) {
	b := &fakeBackend{}
	rd, err := New(b, 0)
	require.NoError(t, err)
	rd.BeginScene(100, 100)
	rd.EndScene()
	assert.Empty(t, b.batches)
}

func TestOrthoMapsPixelCorners(t *testing.T) {
	m := Ortho(0, 800, 600, 0, -1, 1)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	x, y := apply(0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
	x, y = apply(800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestSubTexCornersCarryUVs(t *testing.T) {
	b := &fakeBackend{}
	rd, err := New(b, 0)
	require.NoError(t, err)
	glyphs, err := b.CreateTexture(128, 64, nil, FilterLinear)
	require.NoError(t, err)

	rd.BeginScene(800, 600)
	rd.DrawSubTex(10, 20, 8, 16, glyphs, [4]float32{0.25, 0, 0.5, 1}, colors.White)
	rd.EndScene()

	require.Len(t, b.batches, 1)
	v := b.batches[0].verts
	require.Len(t, v, 4*VertexStride)
	// top-left then bottom-right corner: pos2, color4, uv2, slot
	assert.Equal(t, []float32{10, 20}, v[0:2])
	assert.Equal(t, []float32{0.25, 0, 1}, v[6:9])
	br := v[3*VertexStride:]
	assert.Equal(t, []float32{18, 36}, br[0:2])
	assert.Equal(t, []float32{0.5, 1, 1}, br[6:9])
}
