// Package glbackend implements renderer2d.Backend on OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/frameui/engine/gfx/renderer2d"
)

type RendererGL struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	uVP     int32

	vboSize int
	eboSize int
}

// NewRendererGL initializes GL function pointers for the current context and
// compiles the batch pipeline.
func NewRendererGL() (*RendererGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	r := &RendererGL{}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))

	gl.UseProgram(r.program)
	for i := 0; i < renderer2d.MaxTexSlots; i++ {
		loc := gl.GetUniformLocation(r.program, gl.Str("uTex["+strconv.Itoa(i)+"]\x00"))
		gl.Uniform1i(loc, int32(i))
	}
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// pos2, color4, uv2, texIndex1
	const stride = renderer2d.VertexStride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(8*4)))

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateTexture implements renderer2d.Backend.
func (r *RendererGL) CreateTexture(w, h int, rgba []byte, filter renderer2d.Filter) (renderer2d.Texture, error) {
	if len(rgba) != w*h*4 {
		return 0, fmt.Errorf("texture %dx%d: got %d bytes", w, h, len(rgba))
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	f := int32(gl.LINEAR)
	if filter == renderer2d.FilterNearest {
		f = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("texture upload: gl error 0x%x", e)
	}
	return renderer2d.Texture(tex), nil
}

// DeleteTexture implements renderer2d.Backend.
func (r *RendererGL) DeleteTexture(t renderer2d.Texture) {
	tex := uint32(t)
	gl.DeleteTextures(1, &tex)
}

// DrawBatch implements renderer2d.Backend.
func (r *RendererGL) DrawBatch(vp [16]float32, verts []float32, inds []uint32, textures []renderer2d.Texture) {
	if len(inds) == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	for i, t := range textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, uint32(t))
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if n := len(verts) * 4; n > r.vboSize {
		gl.BufferData(gl.ARRAY_BUFFER, n, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		r.vboSize = n
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(verts))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if n := len(inds) * 4; n > r.eboSize {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n, gl.Ptr(inds), gl.DYNAMIC_DRAW)
		r.eboSize = n
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n, gl.Ptr(inds))
	}

	gl.DrawElements(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTex;
uniform mat4 uVP;
out vec4 vColor;
out vec2 vUV;
flat out int vTex;
void main() {
    vColor = aColor;
    vUV = aUV;
    vTex = int(aTex + 0.5);
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Sampler arrays may only be indexed by constant expressions in 3.3, hence
// the switch.
const fragmentSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
flat in int vTex;
uniform sampler2D uTex[16];
out vec4 FragColor;
void main() {
    vec4 t;
    switch (vTex) {
    case 0: t = texture(uTex[0], vUV); break;
    case 1: t = texture(uTex[1], vUV); break;
    case 2: t = texture(uTex[2], vUV); break;
    case 3: t = texture(uTex[3], vUV); break;
    case 4: t = texture(uTex[4], vUV); break;
    case 5: t = texture(uTex[5], vUV); break;
    case 6: t = texture(uTex[6], vUV); break;
    case 7: t = texture(uTex[7], vUV); break;
    case 8: t = texture(uTex[8], vUV); break;
    case 9: t = texture(uTex[9], vUV); break;
    case 10: t = texture(uTex[10], vUV); break;
    case 11: t = texture(uTex[11], vUV); break;
    case 12: t = texture(uTex[12], vUV); break;
    case 13: t = texture(uTex[13], vUV); break;
    case 14: t = texture(uTex[14], vUV); break;
    default: t = texture(uTex[15], vUV); break;
    }
    FragColor = t * vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
