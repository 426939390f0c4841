package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/frameui/engine/core"
	"github.com/hubastard/frameui/engine/profiler"
	"github.com/hubastard/frameui/engine/ui"
)

type stats struct {
	frame      uint64
	frameTime  time.Duration
	sessionID  string
	lastSample time.Time
	mem        runtime.MemStats
}

func (s *stats) update(f *core.Frame) {
	s.frame = f.Number()
	s.frameTime = f.Delta()
	s.sessionID = f.SessionID()
	// ReadMemStats stops the world; sample twice a second.
	if now := time.Now(); now.Sub(s.lastSample) > 500*time.Millisecond {
		runtime.ReadMemStats(&s.mem)
		s.lastSample = now
	}
}

func (s *stats) show() error {
	ms := float64(s.frameTime.Microseconds()) / 1000
	fps := 0.0
	if ms > 0 {
		fps = 1000 / ms
	}
	lines := []string{
		fmt.Sprintf("Frame: %d", s.frame),
		fmt.Sprintf("\t%2.3f ms (%.2f FPS)", ms, fps),
		fmt.Sprintf("Session: %s", s.sessionID),
		fmt.Sprintf("Depth: %d", ui.Depth()),
		fmt.Sprintf("Usage: %.3f MB", float64(s.mem.HeapAlloc)/(1<<20)),
		fmt.Sprintf("Allocs: %d", s.mem.Mallocs),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		fmt.Sprintf("Profiler: %v", profiler.Enabled),
	}
	for _, l := range lines {
		if err := ui.Monospace(l); err != nil {
			return err
		}
	}
	return nil
}
