// Package renderer2d batches screen-space quads into as few draw calls as the
// texture slot limit allows. It builds vertex data only; a Backend owns the
// GPU objects.
package renderer2d

import "github.com/hubastard/frameui/engine/colors"

// Max textures per batch (common GL limit is 16)
const MaxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const VertexStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// Texture is a backend texture handle. Zero is never a valid texture.
type Texture uint32

// Filter selects texture sampling.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Backend uploads textures and draws finished batches.
type Backend interface {
	CreateTexture(w, h int, rgba []byte, filter Filter) (Texture, error)
	DeleteTexture(t Texture)
	// DrawBatch draws indexed triangles. textures[i] is bound to slot i.
	DrawBatch(vp [16]float32, verts []float32, inds []uint32, textures []Texture)
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	b      Backend
	white  Texture // 1x1 white (slot 0)
	texArr [MaxTexSlots]Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	vp    [16]float32
	stats Statistics
}

// New creates the renderer and its 1x1 white texture.
func New(b Backend, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	white, err := b.CreateTexture(1, 1, []byte{255, 255, 255, 255}, FilterNearest)
	if err != nil {
		return nil, err
	}
	rd := &Renderer2D{
		b: b, white: white, maxQuads: maxQuads,
		verts: make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
	}
	rd.resetBatch()
	return rd, nil
}

// BeginScene starts a frame in pixel space: (0, 0) is the top-left corner
// and Y grows down.
func (rd *Renderer2D) BeginScene(width, height float32) {
	rd.vp = Ortho(0, width, height, 0, -1, 1)
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// White is the 1x1 texture solid quads sample.
func (rd *Renderer2D) White() Texture { return rd.white }

// DrawRect draws a solid rect with its top-left corner at (x, y).
func (rd *Renderer2D) DrawRect(x, y, w, h float32, color colors.Color) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(x, y, w, h, color, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// DrawTexturedRect draws the whole of tex tinted by tint.
func (rd *Renderer2D) DrawTexturedRect(x, y, w, h float32, tex Texture, tint colors.Color) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, slot, 0, 0, 1, 1)
}

// DrawSubTex draws the atlas cell uv = {u0, v0, u1, v1} of tex, with
// (u0, v0) at the top-left corner.
func (rd *Renderer2D) DrawSubTex(x, y, w, h float32, tex Texture, uv [4]float32, tint colors.Color) {
	rd.ensureQuadCapacity()
	slot := rd.texSlot(tex)
	rd.drawQuadInternal(x, y, w, h, tint, slot, uv[0], uv[1], uv[2], uv[3])
}

// --- internals ---

func (rd *Renderer2D) texSlot(t Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= MaxTexSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(x, y, w, h float32, color colors.Color, texIndex float32, u0, v0, u1, v1 float32) {
	// corners (TL, TR, BL, BR) with UVs
	corners := [4][4]float32{
		{x, y, u0, v0},
		{x + w, y, u1, v0},
		{x, y + h, u0, v1},
		{x + w, y + h, u1, v1},
	}
	startVertex := uint32(len(rd.verts) / VertexStride)

	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.b.DrawBatch(rd.vp, rd.verts, rd.inds, rd.texArr[:rd.texCnt])
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}

// Ortho is a column-major orthographic projection.
func Ortho(l, r, b, t, n, f float32) [16]float32 {
	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}
