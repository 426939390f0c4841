// Package toolkit describes the native GUI toolkit frameui drives.
//
// frameui does not draw anything itself. A Toolkit owns the window and the
// event loop and calls App.Update once per rendered frame; the Region values
// it hands out are the native drawing contexts widget calls forward to.
package toolkit

import (
	"image"
	"log/slog"
	"time"
)

//go:generate mockgen -package=core -destination=../core/mock_toolkit_test.go github.com/hubastard/frameui/engine/toolkit Toolkit

// Toolkit runs a native window and its frame loop.
type Toolkit interface {
	// Run creates the window and blocks until it closes. It must call
	// app.Setup once before the first frame and app.Update once per frame,
	// both on the calling thread.
	Run(appName string, opts Options, app App) error
}

// LogReceiver is implemented by toolkits that log. The run hands them its
// session logger before Run; a toolkit with a logger of its own keeps it.
type LogReceiver interface {
	SetDefaultLogger(l *slog.Logger)
}

// App receives the toolkit's lifecycle callbacks.
type App interface {
	// Setup runs once after the window exists.
	Setup(cc CreationContext) error
	// Update runs once per frame.
	Update(ctx Context)
}

// CreationContext is handed to App.Setup.
type CreationContext interface {
	// InstallImageLoaders registers the loader used to resolve image URIs.
	InstallImageLoaders(l ImageLoader)
}

// ImageLoader resolves an image URI ("file://...", "https://...", a plain
// path). Implementations may return ErrImagePending while a load is in flight.
type ImageLoader interface {
	Load(uri string) (image.Image, error)
}

// Context is the per-frame toolkit context.
type Context interface {
	// Frame describes the frame being built.
	Frame() FrameInfo
	// ShowRoot opens the region covering the whole window and runs body with
	// it. The region is only valid while body runs.
	ShowRoot(body func(root Region))
	// RequestClose asks the toolkit to end the loop after this frame.
	RequestClose()
}

// FrameInfo describes one rendered frame.
type FrameInfo struct {
	Number uint64
	Width  float32
	Height float32
	Time   time.Duration
	Delta  time.Duration
}

// Options configure the native window.
type Options struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32
	FontSize   float32
}

// DefaultOptions returns the window defaults.
func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     768,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		FontSize:   16,
	}
}
