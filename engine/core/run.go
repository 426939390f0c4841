package core

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/guard"
	"github.com/hubastard/frameui/engine/scope"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Option configures Run.
type Option func(*options)

type options struct {
	toolkit       toolkit.Toolkit
	toolkitOpts   *toolkit.Options
	logger        *slog.Logger
	policy        Policy
	loader        toolkit.ImageLoader
	stackCapacity int
}

// WithToolkit selects the native toolkit. Run fails without one.
func WithToolkit(t toolkit.Toolkit) Option { return func(o *options) { o.toolkit = t } }

// WithOptions overrides the window options passed to the toolkit.
func WithOptions(opts toolkit.Options) Option { return func(o *options) { o.toolkitOpts = &opts } }

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithPolicy sets how failed host callbacks are handled. Defaults to PolicyLog.
func WithPolicy(p Policy) Option { return func(o *options) { o.policy = p } }

// WithImageLoader installs l into the toolkit during setup.
func WithImageLoader(l toolkit.ImageLoader) Option { return func(o *options) { o.loader = l } }

// WithStackCapacity sets the initial scope stack capacity.
func WithStackCapacity(n int) Option { return func(o *options) { o.stackCapacity = n } }

// Run starts a windowed session named appName and blocks until its window
// closes, calling update once per frame on the calling goroutine's OS thread.
//
// Only one session may run per process. A second Run while one is active
// fails immediately with an AlreadyRunning error. A toolkit failure to create
// or run the window is returned as a WindowCreation error.
func Run(appName string, update FrameFunc, opts ...Option) error {
	const op = "core.Run"

	o := &options{logger: slog.Default(), stackCapacity: scope.DefaultCapacity}
	for _, opt := range opts {
		opt(o)
	}
	if update == nil {
		return uierr.Newf(op, uierr.KindConfig, "nil frame callback")
	}
	if o.toolkit == nil {
		return uierr.Newf(op, uierr.KindConfig, "no toolkit configured")
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	tkOpts := toolkit.DefaultOptions()
	tkOpts.Title = appName
	if o.toolkitOpts != nil {
		tkOpts = *o.toolkitOpts
	}

	// Native GUI contexts and the guard's thread check need a fixed OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tok, err := guard.Process.Acquire()
	if err != nil {
		return err
	}
	defer tok.Release()

	s := newSession(appName, update, tok, o)
	if !active.CompareAndSwap(nil, s) {
		// Only reachable if a previous run leaked its session.
		return uierr.Newf(op, uierr.KindStackConsistency, "another session is still published")
	}
	defer active.CompareAndSwap(s, nil)

	if lr, ok := o.toolkit.(toolkit.LogReceiver); ok {
		lr.SetDefaultLogger(s.log)
	}

	s.log.Info("session started", "policy", s.policy.String())
	defer func() { s.log.Info("session ended", "frames", s.frames) }()

	if err := o.toolkit.Run(appName, tkOpts, s); err != nil {
		var pe *uierr.PanicError
		if errors.As(err, &pe) {
			// The toolkit recovered and reported it already.
			return err
		}
		return &uierr.UIError{
			Op:      op,
			Kind:    uierr.KindWindowCreation,
			Session: s.id,
			Err:     fmt.Errorf("cannot create a window: %w", err),
		}
	}
	return nil
}
