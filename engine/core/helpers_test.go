package core

import (
	"sync"
	"testing"

	uierr "github.com/hubastard/frameui/engine/errors"
)

type recorder struct {
	mu     sync.Mutex
	errs   []*uierr.UIError
	panics []*uierr.PanicError
}

func (r *recorder) HandleError(err *uierr.UIError) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *recorder) HandlePanic(err *uierr.PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

func (r *recorder) kinds() []uierr.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uierr.Kind, 0, len(r.errs))
	for _, e := range r.errs {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) errors() []*uierr.UIError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*uierr.UIError(nil), r.errs...)
}

// recordErrors swaps the global handler for a recorder until the test ends.
func recordErrors(t *testing.T) *recorder {
	t.Helper()
	r := &recorder{}
	uierr.SetHandler(r)
	t.Cleanup(func() { uierr.SetHandler(nil) })
	return r
}
