//go:build profile

// Package profiler records nested timing spans (frames, scopes) and dumps
// them in the speedscope evented format.
package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether spans are recorded in this build.
const Enabled = true

// Init sizes the span ring. Call once before the first frame.
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	ring.init(capacity)
}

// Start opens a span and returns the func that closes it.
// Usage: defer profiler.Start("core.Frame")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(event{at: open, name: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < open {
			end = open
		}
		ring.push(event{at: end, name: id})
	}
}

// Dump writes the recorded spans to dir (os.TempDir() when empty) and
// returns the file path.
func Dump(dir string) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", fmt.Errorf("profiler: no spans recorded")
	}
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "frameui.speedscope.json")
	if err := writeSpeedscope(evs, path); err != nil {
		return "", err
	}
	return path, nil
}

type event struct {
	at   int64
	name int
	open bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
	if n == 0 {
		return nil
	}
	var start uint64
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var (
	namesMu sync.Mutex
	names   []string
	nameIDs = map[string]int{}
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(names)
	nameIDs[name] = id
	names = append(names, name)
	return id
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"`
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

func writeSpeedscope(evs []event, path string) error {
	namesMu.Lock()
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	namesMu.Unlock()

	base := evs[0].at
	var endUS, lastUS int64
	out := make([]ssEvent, 0, len(evs))
	open := make([]int, 0, 64)

	for _, e := range evs {
		at := (e.at - base) / 1000
		if at < lastUS {
			at = lastUS
		}
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.name})
			open = append(open, e.name)
		} else {
			// The ring may have dropped the matching open.
			if len(open) == 0 || open[len(open)-1] != e.name {
				continue
			}
			open = open[:len(open)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.name})
		}
		lastUS = at
		endUS = max(endUS, at)
	}
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: open[i]})
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "frameui",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "frameui-profiler",
		Name:     "frameui capture",
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
