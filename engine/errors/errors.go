// Package errors provides the structured error taxonomy used across frameui.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindAlreadyRunning indicates a second session start while one is active.
	KindAlreadyRunning
	// KindNoActiveFrame indicates a UI call outside an active frame or off the owning thread.
	KindNoActiveFrame
	// KindStackUnderflow indicates a pop from an empty scope stack.
	KindStackUnderflow
	// KindStackConsistency indicates the scope stack was left in an unexpected state.
	KindStackConsistency
	// KindNoActiveScope indicates a read of the stack top while the stack is empty.
	KindNoActiveScope
	// KindDanglingHandle indicates a region handle used after its scope returned.
	KindDanglingHandle
	// KindRegionUnavailable indicates a nested region that was not opened (e.g. collapsed).
	KindRegionUnavailable
	// KindHostCallbackFailed indicates a host frame or body callback failed or panicked.
	KindHostCallbackFailed
	// KindWindowCreation indicates the toolkit could not create or run its window.
	KindWindowCreation
	// KindConfig indicates an invalid configuration.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyRunning:
		return "already running"
	case KindNoActiveFrame:
		return "no active frame"
	case KindStackUnderflow:
		return "stack underflow"
	case KindStackConsistency:
		return "stack consistency"
	case KindNoActiveScope:
		return "no active scope"
	case KindDanglingHandle:
		return "dangling handle"
	case KindRegionUnavailable:
		return "region unavailable"
	case KindHostCallbackFailed:
		return "host callback failed"
	case KindWindowCreation:
		return "window creation"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Defect reports whether errors of this kind indicate a bug in frameui itself
// rather than a usage error by the host.
func (k Kind) Defect() bool {
	return k == KindStackUnderflow || k == KindStackConsistency || k == KindDanglingHandle
}

// Sentinels for errors.Is. A *UIError matches the sentinel of its Kind.
var (
	ErrAlreadyRunning     = &UIError{Kind: KindAlreadyRunning}
	ErrNoActiveFrame      = &UIError{Kind: KindNoActiveFrame}
	ErrStackUnderflow     = &UIError{Kind: KindStackUnderflow}
	ErrStackConsistency   = &UIError{Kind: KindStackConsistency}
	ErrNoActiveScope      = &UIError{Kind: KindNoActiveScope}
	ErrDanglingHandle     = &UIError{Kind: KindDanglingHandle}
	ErrRegionUnavailable  = &UIError{Kind: KindRegionUnavailable}
	ErrHostCallbackFailed = &UIError{Kind: KindHostCallbackFailed}
	ErrWindowCreation     = &UIError{Kind: KindWindowCreation}
	ErrConfig             = &UIError{Kind: KindConfig}
)

// UIError represents a structured error raised by frameui.
type UIError struct {
	// Op is the operation that failed (e.g., "ui.Label", "core.Run").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Session is the id of the session the error belongs to, if any.
	Session string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a UIError for op of the given kind wrapping err (which may be nil).
func New(op string, kind Kind, err error) *UIError {
	return &UIError{Op: op, Kind: kind, Err: err}
}

// Newf is New with a formatted underlying error.
func Newf(op string, kind Kind, format string, args ...any) *UIError {
	return &UIError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *UIError) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("[%s]: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// Is matches any *UIError of the same Kind, so callers can test against the
// package sentinels.
func (e *UIError) Is(target error) bool {
	t, ok := target.(*UIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// PanicError represents a panic recovered from a host callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Horizontal").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panicked error value to errors.Is and errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Handler receives errors reported by frameui.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered outside a host callback.
	HandlePanic(err *PanicError)
}
