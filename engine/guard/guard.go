// Package guard enforces at most one windowed session per process and pins
// UI calls to the OS thread that started it.
package guard

import (
	"sync/atomic"

	uierr "github.com/hubastard/frameui/engine/errors"
)

// Process is the guard shared by every session in this process.
var Process = &Guard{}

// Guard is a non-blocking exclusive-acquire lock with thread affinity.
// The zero value is ready to use.
type Guard struct {
	held  atomic.Bool
	owner atomic.Uint64
	epoch atomic.Uint64
}

// Token is proof of ownership returned by Acquire.
type Token struct {
	g     *Guard
	epoch uint64
	done  atomic.Bool
}

// Acquire takes ownership for the calling OS thread. It never waits: if the
// guard is already held it fails with an AlreadyRunning error.
//
// The caller must have called runtime.LockOSThread, otherwise the recorded
// thread can change under it.
func (g *Guard) Acquire() (*Token, error) {
	if !g.held.CompareAndSwap(false, true) {
		return nil, uierr.Newf("guard.Acquire", uierr.KindAlreadyRunning,
			"a session is already running on thread %d", g.owner.Load())
	}
	g.owner.Store(ThreadID())
	return &Token{g: g, epoch: g.epoch.Add(1)}, nil
}

// Held reports whether a session currently owns the guard.
func (g *Guard) Held() bool { return g.held.Load() }

// Owner returns the owning thread id, or 0 when the guard is free.
func (g *Guard) Owner() uint64 {
	if !g.held.Load() {
		return 0
	}
	return g.owner.Load()
}

// CheckOwner fails with a NoActiveFrame error unless the guard is held by the
// calling thread.
func (g *Guard) CheckOwner(op string) error {
	if !g.held.Load() {
		return uierr.Newf(op, uierr.KindNoActiveFrame, "no session is running")
	}
	if tid, owner := ThreadID(), g.owner.Load(); tid != owner {
		return uierr.Newf(op, uierr.KindNoActiveFrame,
			"called from thread %d, session is owned by thread %d", tid, owner)
	}
	return nil
}

// Release gives ownership back. Calling it more than once, or after a newer
// session took the guard, is a no-op.
func (t *Token) Release() {
	if t == nil || !t.done.CompareAndSwap(false, true) {
		return
	}
	if t.g.epoch.Load() != t.epoch {
		return
	}
	t.g.owner.Store(0)
	t.g.held.Store(false)
}

// Valid reports whether the token still owns its guard.
func (t *Token) Valid() bool {
	return t != nil && !t.done.Load() && t.g.held.Load() && t.g.epoch.Load() == t.epoch
}
