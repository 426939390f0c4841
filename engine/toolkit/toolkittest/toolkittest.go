// Package toolkittest provides a headless, recording toolkit.Toolkit for tests.
package toolkittest

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/hubastard/frameui/engine/toolkit"
)

// Op is one recorded region call.
type Op struct {
	Frame uint64
	Depth int
	Name  string
	Text  string
}

func (o Op) String() string { return fmt.Sprintf("%d:%s(%s)", o.Depth, o.Name, o.Text) }

// Toolkit is a headless toolkit.Toolkit. It runs Frames frames (or until
// RequestClose) and records every region call.
type Toolkit struct {
	// Frames is the number of frames Run drives. Zero means one.
	Frames int
	// RunErr, if set, is returned by Run before any callback.
	RunErr error
	// Collapsed lists collapsing titles that stay closed.
	Collapsed map[string]bool
	// Clicked lists button, link and selectable labels that report a click.
	Clicked map[string]bool
	// OpenCombos lists combo labels whose popup is shown.
	OpenCombos map[string]bool
	// Started, if non-nil, is closed once Setup has run.
	Started chan struct{}
	// Hold, if non-nil, is waited on before Run returns.
	Hold <-chan struct{}
	// BeforeFrame runs on the loop thread before each Update.
	BeforeFrame func(n uint64)

	mu      sync.Mutex
	ops     []Op
	loader  toolkit.ImageLoader
	appName string
	opts    toolkit.Options
}

var _ toolkit.Toolkit = (*Toolkit)(nil)

// Run implements toolkit.Toolkit.
func (t *Toolkit) Run(appName string, opts toolkit.Options, app toolkit.App) error {
	if t.RunErr != nil {
		return t.RunErr
	}
	t.mu.Lock()
	t.appName, t.opts = appName, opts
	t.mu.Unlock()

	if err := app.Setup(creation{t}); err != nil {
		return err
	}
	if t.Started != nil {
		close(t.Started)
	}

	frames := t.Frames
	if frames <= 0 {
		frames = 1
	}
	start := time.Now()
	for i := 0; i < frames; i++ {
		n := uint64(i + 1)
		if t.BeforeFrame != nil {
			t.BeforeFrame(n)
		}
		ctx := &Context{tk: t, info: toolkit.FrameInfo{
			Number: n,
			Width:  float32(opts.Width),
			Height: float32(opts.Height),
			Time:   time.Since(start),
		}}
		app.Update(ctx)
		if ctx.closeRequested {
			break
		}
	}

	if t.Hold != nil {
		<-t.Hold
	}
	return nil
}

// Ops returns a copy of the recorded calls.
func (t *Toolkit) Ops() []Op {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Op(nil), t.ops...)
}

// OpsInFrame returns the calls recorded during frame n.
func (t *Toolkit) OpsInFrame(n uint64) []Op {
	var out []Op
	for _, op := range t.Ops() {
		if op.Frame == n {
			out = append(out, op)
		}
	}
	return out
}

// Loader returns the image loader installed during Setup.
func (t *Toolkit) Loader() toolkit.ImageLoader {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loader
}

// AppName returns the name Run was called with.
func (t *Toolkit) AppName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.appName
}

func (t *Toolkit) record(op Op) {
	t.mu.Lock()
	t.ops = append(t.ops, op)
	t.mu.Unlock()
}

type creation struct{ t *Toolkit }

func (c creation) InstallImageLoaders(l toolkit.ImageLoader) {
	c.t.mu.Lock()
	c.t.loader = l
	c.t.mu.Unlock()
}

// Context is the per-frame context handed to App.Update.
type Context struct {
	tk             *Toolkit
	info           toolkit.FrameInfo
	closeRequested bool
}

func (c *Context) Frame() toolkit.FrameInfo { return c.info }

func (c *Context) RequestClose() { c.closeRequested = true }

func (c *Context) ShowRoot(body func(root toolkit.Region)) {
	r := &Region{tk: c.tk, frame: c.info.Number}
	defer r.close()
	body(r)
}

// CloseRequested reports whether RequestClose was called this frame.
func (c *Context) CloseRequested() bool { return c.closeRequested }

// NewRegion returns a detached root region recording into tk, for tests that
// exercise region consumers without a frame loop.
func NewRegion(tk *Toolkit) *Region { return &Region{tk: tk} }

// loadImage resolves src through the installed loader, if any.
func (t *Toolkit) loadImage(src string) (image.Image, error) {
	l := t.Loader()
	if l == nil {
		return nil, fmt.Errorf("no image loader installed")
	}
	return l.Load(src)
}
