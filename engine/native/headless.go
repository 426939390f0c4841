package native

import (
	"image"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/hubastard/frameui/engine/colors"
	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/input"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Headless is a toolkit.Toolkit without a window. It runs Frames frames, or
// until the app requests a close, painting into Painter.
type Headless struct {
	Frames int
	// Painter receives the frame's drawing. Nil discards it.
	Painter imm.Painter
	// Input supplies the input for frame n. Nil means no input.
	Input func(n uint64) input.Frame
	// FrameTime is the simulated time between frames. Defaults to 16ms.
	FrameTime time.Duration
	// CloseOnEscape ends the run when Escape is pressed outside a text field.
	CloseOnEscape bool
	Logger        *slog.Logger
}

var (
	_ toolkit.Toolkit     = (*Headless)(nil)
	_ toolkit.LogReceiver = (*Headless)(nil)
)

// SetDefaultLogger sets Logger unless one was configured.
func (t *Headless) SetDefaultLogger(l *slog.Logger) {
	if t.Logger == nil {
		t.Logger = l
	}
}

// Run implements toolkit.Toolkit. A panic in the loop is reported and
// returned as a *errors.PanicError.
func (t *Headless) Run(appName string, opts toolkit.Options, app toolkit.App) (err error) {
	defer uierr.Recover("native.Headless.Run", &err)

	log := t.Logger
	if log == nil {
		log = slog.Default()
	}
	p := t.Painter
	if p == nil {
		p = nullPainter{}
	}
	step := t.FrameTime
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	frames := max(t.Frames, 1)

	hostOpts := []Option{
		WithLogger(log),
		WithOpenURL(func(url string) { log.Info("link clicked", "url", url) }),
	}
	if t.CloseOnEscape {
		hostOpts = append(hostOpts, WithCloseOnEscape())
	}
	h := NewHost(p, imm.DefaultStyle(opts.FontSize), app, hostOpts...)
	if err := h.Setup(); err != nil {
		return err
	}
	log.Debug("headless run", "app", appName, "frames", frames)

	for n := uint64(1); n <= uint64(frames); n++ {
		var in input.Frame
		if t.Input != nil {
			in = t.Input(n)
		}
		if h.Frame(float32(opts.Width), float32(opts.Height), time.Duration(n)*step, in) {
			break
		}
	}
	return nil
}

// nullPainter measures text with a fixed advance and draws nothing.
type nullPainter struct{}

func (nullPainter) FillRect(imm.Rect, colors.Color)                                {}
func (nullPainter) Text(float32, float32, string, imm.Font, float32, colors.Color) {}
func (nullPainter) Image(imm.Rect, image.Image, colors.Color)                      {}

func (nullPainter) Measure(s string, _ imm.Font, size float32) (float32, float32) {
	return float32(utf8.RuneCountInString(s)) * size * 0.55, size * 1.2
}
