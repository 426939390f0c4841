package platform

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	uierr "github.com/hubastard/frameui/engine/errors"
	glbackend "github.com/hubastard/frameui/engine/gfx/gl"
	"github.com/hubastard/frameui/engine/gfx/paint"
	"github.com/hubastard/frameui/engine/gfx/renderer2d"
	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/input"
	"github.com/hubastard/frameui/engine/native"
	"github.com/hubastard/frameui/engine/profiler"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Toolkit is the desktop toolkit.Toolkit: a GLFW window with an OpenGL
// renderer drawing the immediate widget layer.
type Toolkit struct {
	Logger *slog.Logger
	// MaxQuads bounds one draw batch. Zero uses the renderer default.
	MaxQuads int
	// CloseOnEscape closes the window on Escape unless a text field has focus.
	CloseOnEscape bool
}

var (
	_ toolkit.Toolkit     = (*Toolkit)(nil)
	_ toolkit.LogReceiver = (*Toolkit)(nil)
)

// SetDefaultLogger sets Logger unless one was configured.
func (t *Toolkit) SetDefaultLogger(l *slog.Logger) {
	if t.Logger == nil {
		t.Logger = l
	}
}

// Run implements toolkit.Toolkit. It must be called on the main thread. A
// panic in the loop is reported and returned as a *errors.PanicError.
func (t *Toolkit) Run(appName string, opts toolkit.Options, app toolkit.App) (err error) {
	defer uierr.Recover("platform.Run", &err)

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := t.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = appName
	}

	state := input.NewState()
	win, err := NewGLFWWindow(Config{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		VSync:  opts.VSync,
		Logger: log,
	}, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()

	rend, err := glbackend.NewRendererGL()
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	batch, err := renderer2d.New(rend, t.MaxQuads)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	painter, err := paint.New(batch, rend, opts.FontSize, log)
	if err != nil {
		return err
	}
	defer painter.Close()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	win.SetEventCallback(func(ev input.Event) {
		if _, ok := ev.(input.EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
		state.Handle(ev)
	})

	hostOpts := []native.Option{native.WithLogger(log)}
	if t.CloseOnEscape {
		hostOpts = append(hostOpts, native.WithCloseOnEscape())
	}
	host := native.NewHost(painter, imm.DefaultStyle(opts.FontSize), app, hostOpts...)
	if err := host.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	var (
		start = time.Now()
		clear = opts.ClearColor
	)
	for !win.ShouldClose() {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		ww, wh := win.Size()
		if ww < 1 || wh < 1 {
			// Minimized.
			time.Sleep(50 * time.Millisecond)
			continue
		}

		end := profiler.Start("platform.Frame")
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		batch.BeginScene(float32(ww), float32(wh))
		closeReq := host.Frame(float32(ww), float32(wh), time.Since(start), state.Frame())
		batch.EndScene()
		end()

		win.SwapBuffers()
		if closeReq {
			win.SetShouldClose(true)
		}
	}
	log.Debug("window closed", "app", appName, "quads_last_frame", batch.Stats().QuadCount)
	return nil
}
