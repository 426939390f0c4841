package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot wraps the installed Handler so it can live in an atomic.Pointer.
type handlerSlot struct{ h Handler }

var installed atomic.Pointer[handlerSlot]

// SetHandler installs h as the process-wide handler. Nil restores the
// default, a LogHandler writing to slog.Default().
func SetHandler(h Handler) {
	if h == nil {
		installed.Store(nil)
		return
	}
	installed.Store(&handlerSlot{h: h})
}

func getHandler() Handler {
	if s := installed.Load(); s != nil {
		return s.h
	}
	return &LogHandler{}
}

// Report hands err to the installed handler, stamping the time if unset.
func Report(err *UIError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandlePanic(err)
}

// Recover stops a panic at a toolkit boundary, reports it and, when errp is
// not nil, stores it there as a *PanicError so the loop returns it.
// Usage: defer errors.Recover("native.Headless.Run", &err)
func Recover(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	pe := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	ReportPanic(pe)
	if errp != nil {
		*errp = pe
	}
}

// CaptureStack formats up to 32 frames of the caller's caller's stack, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
