// Package app is the one-call entry point for a frameui program. It reads
// frameui.yaml, sets up logging and error reporting, and runs the desktop
// toolkit.
package app

import (
	"context"
	"io"
	"os"

	"github.com/hubastard/frameui/engine/assets"
	"github.com/hubastard/frameui/engine/config"
	"github.com/hubastard/frameui/engine/core"
	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/platform"
	"github.com/hubastard/frameui/engine/toolkit"
)

// Option configures Run.
type Option func(*options)

type options struct {
	configDir string
	logOut    io.Writer
	toolkit   toolkit.Toolkit
	prefetch  []string
	core      []core.Option
}

// WithConfigDir sets the directory searched for frameui.yaml. Defaults to
// the working directory.
func WithConfigDir(dir string) Option { return func(o *options) { o.configDir = dir } }

// WithLogOutput sets where logs go. Defaults to stderr.
func WithLogOutput(w io.Writer) Option { return func(o *options) { o.logOut = w } }

// WithToolkit replaces the desktop toolkit, e.g. with native.Headless. A
// toolkit implementing toolkit.LogReceiver without a logger of its own logs
// through the configured logger.
func WithToolkit(t toolkit.Toolkit) Option { return func(o *options) { o.toolkit = t } }

// WithPrefetch starts loading images in the background before the first frame.
func WithPrefetch(uris ...string) Option {
	return func(o *options) { o.prefetch = append(o.prefetch, uris...) }
}

// WithCoreOptions appends options passed to core.Run after the ones derived
// from the config file, so they take precedence.
func WithCoreOptions(opts ...core.Option) Option {
	return func(o *options) { o.core = append(o.core, opts...) }
}

// Run opens a window titled appName and calls frame once per frame until the
// window closes.
func Run(appName string, frame core.FrameFunc, opts ...Option) error {
	o := &options{configDir: ".", logOut: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.LoadOptional(o.configDir)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(o.logOut)
	if err != nil {
		return err
	}
	policy, err := core.ParsePolicy(cfg.Errors.Policy)
	if err != nil {
		return err
	}

	uierr.SetHandler(&uierr.LogHandler{Logger: logger, Verbose: cfg.Log.Verbose})
	defer uierr.SetHandler(nil)

	loader := assets.NewLoader(assets.Options{
		Root:      cfg.Images.Root,
		CacheSize: cfg.Images.CacheSize,
		Logger:    logger,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if len(o.prefetch) > 0 {
		go func() {
			if err := loader.Prefetch(ctx, o.prefetch...); err != nil && ctx.Err() == nil {
				logger.Warn("image prefetch failed", "err", err)
			}
		}()
	}

	tk := o.toolkit
	if tk == nil {
		// Logs through the session logger core.Run hands it.
		tk = &platform.Toolkit{CloseOnEscape: true}
	}
	coreOpts := append([]core.Option{
		core.WithToolkit(tk),
		core.WithOptions(cfg.ToolkitOptions(appName)),
		core.WithLogger(logger),
		core.WithPolicy(policy),
		core.WithImageLoader(loader),
	}, o.core...)
	return core.Run(appName, frame, coreOpts...)
}
