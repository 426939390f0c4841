// Package platform opens the native window and GL context and translates
// GLFW callbacks into input events.
package platform

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/frameui/engine/input"
)

// Config describes the window to create.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	Logger *slog.Logger
}

// GLFWWindow owns a GLFW window and pushes events to a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(input.Event)
}

// NewGLFWWindow initializes GLFW and creates a window with a current GL 3.3
// core context. The caller's OS thread must be locked and must be the
// process main thread on platforms that require it.
func NewGLFWWindow(cfg Config, onEvent func(input.Event)) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if cfg.Logger != nil {
		fw, fh := win.GetFramebufferSize()
		cfg.Logger.Debug("window created", "title", cfg.Title, "framebuffer_w", fw, "framebuffer_h", fh)
	}

	gw := &GLFWWindow{w: win, onEv: onEvent}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(input.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(input.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(input.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		gw.emit(input.EventMouseButton{Button: int(b - glfw.MouseButton1), Down: action == glfw.Press})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == input.KeyUnknown {
			return
		}
		gw.emit(input.EventKey{Key: k, Down: action != glfw.Release, Repeat: action == glfw.Repeat, Mods: translateMods(mods)})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(input.EventChar{Rune: r})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(input.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev input.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// Destroy closes the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func (g *GLFWWindow) PollEvents()                           { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                          { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                     { return g.w.ShouldClose() }
func (g *GLFWWindow) SetShouldClose(v bool)                 { g.w.SetShouldClose(v) }
func (g *GLFWWindow) FramebufferSize() (int, int)           { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) Size() (int, int)                      { return g.w.GetSize() }
func (g *GLFWWindow) SetTitle(t string)                     { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(input.Event)) { g.onEv = cb }

// Time is seconds since GLFW was initialized.
func (g *GLFWWindow) Time() float64 { return glfw.GetTime() }

func translateKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyLeft:
		return input.KeyLeft
	case glfw.KeyRight:
		return input.KeyRight
	case glfw.KeyUp:
		return input.KeyUp
	case glfw.KeyDown:
		return input.KeyDown
	case glfw.KeySpace:
		return input.KeySpace
	default:
		return input.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) input.Mod {
	var out input.Mod
	if m&glfw.ModShift != 0 {
		out |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= input.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= input.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= input.ModSuper
	}
	return out
}
