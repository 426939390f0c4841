package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hubastard/frameui/engine/app"
	"github.com/hubastard/frameui/engine/native"
	"github.com/hubastard/frameui/engine/profiler"
)

func main() {
	var (
		configDir = flag.String("config", ".", "directory holding frameui.yaml")
		headless  = flag.Int("headless", 0, "run N frames without a window")
		profile   = flag.Bool("profile", false, "dump a speedscope profile on exit (needs -tags profile)")
	)
	flag.Parse()

	if *profile {
		profiler.Init(1 << 16)
	}

	d := newDemo()
	opts := []app.Option{
		app.WithConfigDir(*configDir),
		app.WithPrefetch(d.images()...),
	}
	if *headless > 0 {
		opts = append(opts, app.WithToolkit(&native.Headless{Frames: *headless}))
	}

	if err := app.Run("frameui sandbox", d.frame, opts...); err != nil {
		log.Fatal(err)
	}

	if *profile {
		path, err := profiler.Dump("")
		switch {
		case errors.Is(err, profiler.ErrDisabled):
			log.Print(err)
		case err != nil:
			log.Fatal(err)
		default:
			log.Printf("profile written to %s", path)
		}
	}
}
