package core

import (
	"time"

	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/profiler"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Frame is handed to the host FrameFunc. It is only meaningful during the
// call it was passed to.
type Frame struct {
	info toolkit.FrameInfo
	ctx  toolkit.Context
	s    *Session
}

// Number is the 1-based frame counter.
func (f *Frame) Number() uint64 { return f.info.Number }

// Size is the window's drawable size in pixels.
func (f *Frame) Size() (w, h float32) { return f.info.Width, f.info.Height }

// Time is the time since the window opened.
func (f *Frame) Time() time.Duration { return f.info.Time }

// Delta is the time since the previous frame.
func (f *Frame) Delta() time.Duration { return f.info.Delta }

// SessionID identifies the running session.
func (f *Frame) SessionID() string { return f.s.id }

// RequestClose ends the session after this frame.
func (f *Frame) RequestClose() { f.ctx.RequestClose() }

// Setup implements toolkit.App.
func (s *Session) Setup(cc toolkit.CreationContext) error {
	if s.loader != nil {
		cc.InstallImageLoaders(s.loader)
	}
	s.log.Debug("toolkit ready", "image_loader", s.loader != nil)
	return nil
}

// Update implements toolkit.App. The toolkit calls it once per frame; it
// runs the host FrameFunc inside the root region under the same push, run,
// pop protocol as every other scope.
func (s *Session) Update(ctx toolkit.Context) {
	const op = "core.Frame"

	if err := s.owned(op); err != nil {
		// The driver was reached from a thread that did not call Run.
		fault := uierr.New(op, uierr.KindNoActiveFrame, err)
		fault.Session = s.id
		uierr.Report(fault)
		panic(fault)
	}
	defer profiler.Start(op)()

	s.frames++
	info := ctx.Frame()
	frame := &Frame{info: info, ctx: ctx, s: s}

	if s.stack.Len() != 0 {
		s.defect(uierr.Newf(op, uierr.KindStackConsistency, "frame %d started at depth %d", info.Number, s.stack.Len()))
		s.stack.Reset()
	}

	shown := false
	ctx.ShowRoot(func(root toolkit.Region) {
		shown = true
		_, popErr := s.enter(op, root, func() error { return s.update(frame) })
		if popErr != nil {
			s.defect(popErr)
		}
	})
	if !shown {
		s.log.Warn("toolkit did not show the root region", "frame", info.Number)
	}

	if s.stack.Len() != 0 {
		s.defect(uierr.Newf(op, uierr.KindStackConsistency, "frame %d ended at depth %d", info.Number, s.stack.Len()))
		s.stack.Reset()
	}
	if s.closeAfterFrame {
		s.closeAfterFrame = false
		s.log.Info("closing after failed callback", "frame", info.Number)
		ctx.RequestClose()
	}
	s.log.Debug("frame", "n", info.Number, "delta", info.Delta)
}
