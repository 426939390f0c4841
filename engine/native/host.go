// Package native runs a toolkit.App against the immediate widget layer.
// The platform package supplies the window and a GPU painter; Headless runs
// the same frames without a window.
package native

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/input"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// WithOpenURL replaces the handler hyperlinks call.
func WithOpenURL(fn func(url string)) Option { return func(h *Host) { h.ui.OpenURL = fn } }

// WithCloseOnEscape makes Escape end the loop unless a text field had focus
// when the frame started; there it only drops the focus.
func WithCloseOnEscape() Option { return func(h *Host) { h.escCloses = true } }

// Host turns toolkit.App callbacks into imm frames.
type Host struct {
	app       toolkit.App
	ui        *imm.Ctx
	log       *slog.Logger
	frames    uint64
	last      time.Duration
	escCloses bool
}

func NewHost(p imm.Painter, style imm.Style, app toolkit.App, opts ...Option) *Host {
	h := &Host{app: app, ui: imm.NewCtx(p, style), log: slog.Default()}
	h.ui.IsPending = func(err error) bool { return errors.Is(err, toolkit.ErrImagePending) }
	h.ui.OpenURL = func(url string) {
		if err := OpenURL(url); err != nil {
			h.log.Warn("cannot open link", "url", url, "err", err)
		}
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Setup runs the app's setup callback.
func (h *Host) Setup() error { return h.app.Setup(creation{h}) }

type creation struct{ h *Host }

func (c creation) InstallImageLoaders(l toolkit.ImageLoader) {
	if l == nil {
		c.h.ui.Images = nil
		return
	}
	c.h.ui.Images = l.Load
}

// Frame builds one w by height frame at time now from in. It reports whether
// the app asked to close.
func (h *Host) Frame(w, height float32, now time.Duration, in input.Frame) bool {
	h.frames++
	ctx := &Context{
		host: h,
		in:   in,
		info: toolkit.FrameInfo{
			Number: h.frames,
			Width:  w,
			Height: height,
			Time:   now,
			Delta:  now - h.last,
		},
	}
	h.last = now
	typing := h.WantsKeyboard()
	h.app.Update(ctx)
	if h.escCloses && !typing && in.KeyPressed(input.KeyEscape) {
		h.log.Debug("escape pressed, closing", "frame", h.frames)
		return true
	}
	return ctx.closeRequested
}

// WantsKeyboard reports whether a text field has focus.
func (h *Host) WantsKeyboard() bool { return h.ui.Focused() }

// Context implements toolkit.Context for one frame.
type Context struct {
	host           *Host
	info           toolkit.FrameInfo
	in             input.Frame
	shown          bool
	closeRequested bool
}

var _ toolkit.Context = (*Context)(nil)

func (c *Context) Frame() toolkit.FrameInfo { return c.info }
func (c *Context) RequestClose()            { c.closeRequested = true }

// ShowRoot lays out body over the whole window. Only the first call per
// frame draws.
func (c *Context) ShowRoot(body func(root toolkit.Region)) {
	if c.shown {
		c.host.log.Warn("root region shown twice", "frame", c.info.Number)
		return
	}
	c.shown = true
	ui := c.host.ui
	u := ui.Begin(imm.Rect{W: c.info.Width, H: c.info.Height}, c.in, c.info.Time)
	defer ui.End()
	scoped(u, body)
}
