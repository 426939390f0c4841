// Package core owns the windowed session: the run guard token, the region
// stack, the host frame callback, and the protocol every scope follows.
package core

import (
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/guard"
	"github.com/hubastard/frameui/engine/scope"
	"github.com/hubastard/frameui/engine/toolkit"
)

const outsideFrameMsg = "UI functions must be called from the frame callback, on the thread that called Run"

// FrameFunc is the host callback run once per frame.
type FrameFunc func(f *Frame) error

// Policy decides what a scope does with a failed host callback.
type Policy int

const (
	// PolicyLog reports the failure and continues as if the body returned nil.
	PolicyLog Policy = iota
	// PolicyPropagate reports the failure and returns it from the scope call.
	PolicyPropagate
	// PolicyCloseSession propagates and closes the window after the frame.
	PolicyCloseSession
)

func (p Policy) String() string {
	switch p {
	case PolicyPropagate:
		return "propagate"
	case PolicyCloseSession:
		return "close"
	default:
		return "log"
	}
}

// ParsePolicy maps a config name to a Policy. Empty means PolicyLog.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "log":
		return PolicyLog, nil
	case "propagate":
		return PolicyPropagate, nil
	case "close":
		return PolicyCloseSession, nil
	}
	return PolicyLog, uierr.Newf("core.ParsePolicy", uierr.KindConfig, "unknown error policy %q", s)
}

// Session is one windowed run. It is created by Run and discarded when the
// toolkit loop returns.
type Session struct {
	id      string
	appName string
	update  FrameFunc
	guard   *guard.Guard
	token   *guard.Token
	stack   *scope.Stack[toolkit.Region]
	log     *slog.Logger
	policy  Policy
	loader  toolkit.ImageLoader

	frames          uint64
	closeAfterFrame bool
}

var active atomic.Pointer[Session]

func newSession(appName string, update FrameFunc, tok *guard.Token, o *options) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		appName: appName,
		update:  update,
		guard:   guard.Process,
		token:   tok,
		stack:   scope.New[toolkit.Region](o.stackCapacity),
		log:     o.logger.With(slog.String("session_id", id), slog.String("app", appName)),
		policy:  o.policy,
		loader:  o.loader,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Frames returns the number of frames driven so far.
func (s *Session) Frames() uint64 { return s.frames }

// Depth returns the number of open scopes. It is 0 off the session thread
// and after the session ended.
func (s *Session) Depth() int {
	if s.owned("core.Depth") != nil {
		return 0
	}
	return s.stack.Len()
}

// Active returns the running session, or nil.
func Active() *Session { return active.Load() }

// Depth returns the scope depth of the running session, 0 when none or when
// called off the session thread.
func Depth() int {
	if s := active.Load(); s != nil {
		return s.Depth()
	}
	return 0
}

// owned fails with a NoActiveFrame error unless s still holds the run guard
// and the caller is on the thread that called Run.
func (s *Session) owned(op string) error {
	if !s.token.Valid() {
		return uierr.Newf(op, uierr.KindNoActiveFrame, "session %s has ended", s.id)
	}
	return s.guard.CheckOwner(op)
}

// Current returns the region widget calls should draw into: the top of the
// running session's stack. It fails with a NoActiveFrame error when there is
// no session, when called off the session thread, or between frames.
func Current(op string) (toolkit.Region, error) {
	s := active.Load()
	if s == nil {
		return nil, uierr.Newf(op, uierr.KindNoActiveFrame, outsideFrameMsg)
	}
	return s.current(op)
}

func (s *Session) current(op string) (toolkit.Region, error) {
	if err := s.owned(op); err != nil {
		return nil, s.tag(err)
	}
	r, err := s.stack.Top()
	if err == nil {
		return r, nil
	}
	if errors.Is(err, uierr.ErrDanglingHandle) {
		s.defect(uierr.New(op, uierr.KindDanglingHandle, err))
	}
	return nil, &uierr.UIError{Op: op, Kind: uierr.KindNoActiveFrame, Session: s.id, Err: errors.New(outsideFrameMsg)}
}

// tag stamps the session id on frameui errors.
func (s *Session) tag(err error) error {
	var ue *uierr.UIError
	if errors.As(err, &ue) && ue.Session == "" {
		ue.Session = s.id
	}
	return err
}

// defect reports an internal invariant violation. A correct build never
// reaches it.
func (s *Session) defect(err error) {
	var ue *uierr.UIError
	if !errors.As(err, &ue) {
		ue = uierr.New("core", uierr.KindStackConsistency, err)
	}
	if ue.Session == "" {
		ue.Session = s.id
	}
	if ue.StackTrace == "" {
		ue.StackTrace = uierr.CaptureStack()
	}
	uierr.Report(ue)
}
