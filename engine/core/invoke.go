package core

import (
	"errors"
	"fmt"
	"time"

	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Outcome reports whether a scope call ran its body.
type Outcome int

const (
	// OutcomeOpened means the region opened and the body ran.
	OutcomeOpened Outcome = iota
	// OutcomeUnavailable means the region legitimately did not open (e.g. a
	// collapsed section) and the body did not run.
	OutcomeUnavailable
)

func (o Outcome) String() string {
	if o == OutcomeOpened {
		return "opened"
	}
	return "unavailable"
}

// Invoke opens a child region of kind under the current region and runs
// body with the child on top of the stack. See Session.Invoke.
func Invoke(op string, kind toolkit.Kind, p toolkit.Params, body func() error) (Outcome, error) {
	s := active.Load()
	if s == nil {
		return OutcomeUnavailable, uierr.Newf(op, uierr.KindNoActiveFrame, outsideFrameMsg)
	}
	return s.Invoke(op, kind, p, body)
}

// Invoke runs one scope call:
//
//  1. resolve the parent from the stack top,
//  2. ask the parent to open a child of kind,
//  3. push the child, run body, pop on every exit path,
//  4. report a failed body and, under PolicyLog, swallow it.
//
// A region that declines to open returns OutcomeUnavailable with a nil error
// when that is legitimate for its kind. A stack left at a different depth is
// a StackConsistency defect: it is reported, the stack is restored, and the
// error is returned.
func (s *Session) Invoke(op string, kind toolkit.Kind, p toolkit.Params, body func() error) (Outcome, error) {
	parent, err := s.current(op)
	if err != nil {
		return OutcomeUnavailable, err
	}

	depth := s.stack.Len()
	var (
		calls   int
		bodyErr error
		popErr  error
	)
	opened := parent.Open(kind, p, func(child toolkit.Region) {
		calls++
		if calls > 1 {
			popErr = uierr.Newf(op, uierr.KindStackConsistency, "%s region ran its body twice", kind)
			return
		}
		bodyErr, popErr = s.enter(op, child, body)
	})

	if popErr == nil && s.stack.Len() != depth {
		popErr = uierr.Newf(op, uierr.KindStackConsistency, "depth %d after %s scope, expected %d", s.stack.Len(), kind, depth)
	}
	if popErr == nil && opened && calls == 0 {
		popErr = uierr.Newf(op, uierr.KindStackConsistency, "%s region reported open without running its body", kind)
	}
	if popErr == nil && !opened && calls == 0 && !kind.MayBeUnavailable() {
		popErr = uierr.Newf(op, uierr.KindStackConsistency, "%s region did not open", kind)
	}
	if popErr != nil {
		s.stack.Truncate(depth)
		s.defect(popErr)
		return OutcomeUnavailable, s.tag(popErr)
	}

	if calls == 0 {
		return OutcomeUnavailable, nil
	}
	return OutcomeOpened, bodyErr
}

// enter pushes region, runs body, and pops what it pushed whether body
// returned, failed or panicked.
func (s *Session) enter(op string, region toolkit.Region, body func() error) (bodyErr, popErr error) {
	ref := s.stack.Push(region)
	defer func() {
		popErr = s.stack.PopRef(ref)
	}()
	return s.call(op, body), nil
}

// call runs a host callback, turning a returned error or a panic into a
// reported HostCallbackFailed error.
func (s *Session) call(op string, body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &uierr.PanicError{
				Op:         op,
				Value:      r,
				StackTrace: uierr.CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
		if err != nil {
			err = s.callbackFailed(op, err)
		}
	}()
	if body == nil {
		return nil
	}
	return body()
}

func (s *Session) callbackFailed(op string, err error) error {
	// Already reported by an inner scope under a propagating policy.
	if errors.Is(err, uierr.ErrHostCallbackFailed) {
		return s.applyPolicy(err)
	}

	fail := &uierr.UIError{
		Op:      op,
		Kind:    uierr.KindHostCallbackFailed,
		Session: s.id,
		Err:     err,
	}
	var pe *uierr.PanicError
	if errors.As(err, &pe) {
		fail.StackTrace = pe.StackTrace
	}
	uierr.Report(fail)
	s.log.Debug("host callback failed", "op", op, "policy", s.policy.String(), "err", fmt.Sprint(err))
	return s.applyPolicy(fail)
}

func (s *Session) applyPolicy(err error) error {
	switch s.policy {
	case PolicyPropagate:
		return err
	case PolicyCloseSession:
		s.closeAfterFrame = true
		return err
	default:
		return nil
	}
}
