package native_test

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/frameui/engine/cells"
	"github.com/hubastard/frameui/engine/colors"
	"github.com/hubastard/frameui/engine/core"
	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/imm"
	"github.com/hubastard/frameui/engine/input"
	"github.com/hubastard/frameui/engine/native"
	"github.com/hubastard/frameui/engine/toolkit"
	"github.com/hubastard/frameui/engine/ui"
)

var discard = slog.New(slog.DiscardHandler)

type drawnText struct {
	s    string
	x, y float32
}

// recordingPainter keeps the text drawn in the latest frame.
type recordingPainter struct {
	texts  []drawnText
	images int
}

func (p *recordingPainter) FillRect(imm.Rect, colors.Color) {}
func (p *recordingPainter) Text(x, y float32, s string, _ imm.Font, _ float32, _ colors.Color) {
	p.texts = append(p.texts, drawnText{s, x, y})
}
func (p *recordingPainter) Measure(s string, _ imm.Font, size float32) (float32, float32) {
	return float32(len(s)) * size * 0.5, size
}
func (p *recordingPainter) Image(imm.Rect, image.Image, colors.Color) { p.images++ }

func (p *recordingPainter) find(s string) (drawnText, bool) {
	for _, t := range p.texts {
		if t.s == s {
			return t, true
		}
	}
	return drawnText{}, false
}

func (p *recordingPainter) strings() []string {
	out := make([]string, 0, len(p.texts))
	for _, t := range p.texts {
		out = append(out, t.s)
	}
	return out
}

type countingHandler struct {
	errs   []*uierr.UIError
	panics []*uierr.PanicError
}

func (h *countingHandler) HandleError(e *uierr.UIError)    { h.errs = append(h.errs, e) }
func (h *countingHandler) HandlePanic(e *uierr.PanicError) { h.panics = append(h.panics, e) }

func quiet(t *testing.T) *countingHandler {
	t.Helper()
	h := &countingHandler{}
	uierr.SetHandler(h)
	t.Cleanup(func() { uierr.SetHandler(nil) })
	return h
}

func TestHeadlessRunsWidgets(t *testing.T) {
	quiet(t)
	p := &recordingPainter{}
	tk := &native.Headless{Frames: 3, Painter: p, Logger: discard}

	var frames []uint64
	err := core.Run("headless", func(f *core.Frame) error {
		frames = append(frames, f.Number())
		p.texts = p.texts[:0]
		return errors.Join(
			ui.Heading("Settings"),
			ui.Horizontal(func() error {
				return errors.Join(ui.Label("left"), ui.Label("right"))
			}),
		)
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2, 3}, frames)
	assert.Equal(t, []string{"Settings", "left", "right"}, p.strings())

	left, _ := p.find("left")
	right, _ := p.find("right")
	assert.Equal(t, left.y, right.y)
	assert.Greater(t, right.x, left.x)
}

func TestHeadlessButtonClick(t *testing.T) {
	quiet(t)
	p := &recordingPainter{}
	var at drawnText
	tk := &native.Headless{
		Frames:  3,
		Painter: p,
		Logger:  discard,
		Input: func(n uint64) input.Frame {
			x, y := at.x+2, at.y+2
			switch n {
			case 2:
				return input.Frame{MouseX: x, MouseY: y, MouseDown: true, MousePressed: true}
			case 3:
				return input.Frame{MouseX: x, MouseY: y, MouseReleased: true}
			}
			return input.Frame{}
		},
	}

	var clicks []bool
	err := core.Run("headless", func(f *core.Frame) error {
		p.texts = p.texts[:0]
		clicked, err := ui.ButtonClicked("Save")
		clicks = append(clicks, clicked)
		at, _ = p.find("Save")
		return err
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, clicks)
}

func TestHeadlessCheckboxWritesCell(t *testing.T) {
	quiet(t)
	p := &recordingPainter{}
	var at drawnText
	tk := &native.Headless{
		Frames:  2,
		Painter: p,
		Logger:  discard,
		Input: func(n uint64) input.Frame {
			if n == 2 {
				return input.Frame{MouseX: at.x + 2, MouseY: at.y + 2, MouseDown: false, MousePressed: true, MouseReleased: true}
			}
			return input.Frame{}
		},
	}
	dark := cells.NewBool(false)

	err := core.Run("headless", func(f *core.Frame) error {
		p.texts = p.texts[:0]
		err := ui.Checkbox(dark, "Dark mode")
		at, _ = p.find("Dark mode")
		return err
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)
	assert.True(t, dark.Get())
}

func TestCollapsedSectionSkipsBody(t *testing.T) {
	h := quiet(t)
	tk := &native.Headless{Logger: discard}

	ran := false
	var open bool
	err := core.Run("headless", func(f *core.Frame) error {
		var err error
		open, err = ui.Collapsing("Advanced", func() error {
			ran = true
			return nil
		})
		return err
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)

	assert.False(t, open)
	assert.False(t, ran)
	assert.Empty(t, h.errs)
}

type stubLoader struct{ err error }

func (l stubLoader) Load(string) (image.Image, error) {
	if l.err != nil {
		return nil, l.err
	}
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
}

func TestImagesUseInstalledLoader(t *testing.T) {
	quiet(t)
	tests := []struct {
		name       string
		loader     toolkit.ImageLoader
		wantImages int
		wantText   []string
	}{
		{"ready", stubLoader{}, 1, []string{}},
		{"pending", stubLoader{err: toolkit.ErrImagePending}, 0, []string{}},
		{"failed", stubLoader{err: errors.New("404")}, 0, []string{"[image: logo.png]"}},
		{"no loader", nil, 0, []string{"[image: logo.png]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPainter{}
			opts := []core.Option{core.WithToolkit(&native.Headless{Painter: p, Logger: discard}), core.WithLogger(discard)}
			if tt.loader != nil {
				opts = append(opts, core.WithImageLoader(tt.loader))
			}
			err := core.Run("headless", func(*core.Frame) error { return ui.Image("logo.png") }, opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantImages, p.images)
			assert.Equal(t, tt.wantText, p.strings())
		})
	}
}

func TestRequestCloseStopsHeadless(t *testing.T) {
	quiet(t)
	tk := &native.Headless{Frames: 10, Logger: discard}
	n := 0
	err := core.Run("headless", func(f *core.Frame) error {
		n++
		if n == 4 {
			f.RequestClose()
		}
		return nil
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestOpenURLRejectsUnsafeSchemes(t *testing.T) {
	for _, raw := range []string{"javascript:alert(1)", "file:///etc/passwd", "ftp://example.com"} {
		assert.Error(t, native.OpenURL(raw), raw)
	}
}

func TestHeadlessPanicIsReportedAndReturned(t *testing.T) {
	h := quiet(t)
	tk := &native.Headless{
		Frames: 5,
		Logger: discard,
		Input: func(n uint64) input.Frame {
			if n == 2 {
				panic("input device lost")
			}
			return input.Frame{}
		},
	}

	frames := 0
	err := core.Run("headless", func(*core.Frame) error {
		frames++
		return nil
	}, core.WithToolkit(tk), core.WithLogger(discard))

	var pe *uierr.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "native.Headless.Run", pe.Op)
	assert.Equal(t, "input device lost", pe.Value)
	assert.Equal(t, 1, frames)
	require.Len(t, h.panics, 1)
	assert.Same(t, pe, h.panics[0])
	assert.Zero(t, core.Depth())
}

func escapeFrame() input.Frame {
	return input.Frame{Pressed: map[input.Key]bool{input.KeyEscape: true}}
}

func TestHeadlessEscapeCloses(t *testing.T) {
	quiet(t)
	tk := &native.Headless{
		Frames:        5,
		Logger:        discard,
		CloseOnEscape: true,
		Input: func(n uint64) input.Frame {
			if n == 2 {
				return escapeFrame()
			}
			return input.Frame{}
		},
	}

	frames := 0
	err := core.Run("headless", func(*core.Frame) error {
		frames++
		return ui.Label("x")
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, 2, frames)
}

func TestHeadlessEscapeInTextFieldOnlyUnfocuses(t *testing.T) {
	quiet(t)
	p := &recordingPainter{}
	var at drawnText
	tk := &native.Headless{
		Frames:        6,
		Painter:       p,
		Logger:        discard,
		CloseOnEscape: true,
		Input: func(n uint64) input.Frame {
			switch n {
			case 2:
				return input.Frame{MouseX: at.x + 2, MouseY: at.y + 2, MouseDown: true, MousePressed: true}
			case 3, 4:
				return escapeFrame()
			}
			return input.Frame{}
		},
	}

	name := cells.NewStr("name")
	frames := 0
	err := core.Run("headless", func(*core.Frame) error {
		frames++
		p.texts = p.texts[:0]
		err := ui.TextEditSingleline(name)
		at, _ = p.find("name")
		return err
	}, core.WithToolkit(tk), core.WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, 4, frames, "the first Escape leaves the field, the second closes")
	assert.Equal(t, "name", name.Get())
}

func TestHeadlessLogsThroughRunLogger(t *testing.T) {
	quiet(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tk := &native.Headless{Frames: 1}
	err := core.Run("headless", func(*core.Frame) error { return nil },
		core.WithToolkit(tk), core.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "headless run")

	own := &native.Headless{Frames: 1, Logger: discard}
	buf.Reset()
	require.NoError(t, core.Run("headless", func(*core.Frame) error { return nil },
		core.WithToolkit(own), core.WithLogger(logger)))
	assert.NotContains(t, buf.String(), "headless run")
	assert.Same(t, discard, own.Logger)
}
