//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWritesBalancedEvents(t *testing.T) {
	Init(64)

	outer := Start("frame")
	Start("scope")()
	outer()

	path, err := Dump(t.TempDir())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Profiles, 1)

	var kinds string
	for _, e := range doc.Profiles[0].Events {
		kinds += e.Type
	}
	assert.Equal(t, "OOCC", kinds)
	assert.Equal(t, "microseconds", doc.Profiles[0].Unit)
}

func TestRingKeepsNewestEvents(t *testing.T) {
	var r eventRing
	r.init(3)
	for i := range 5 {
		r.push(event{at: int64(i)})
	}
	evs := r.snapshot()
	require.Len(t, evs, 3)
	assert.Equal(t, int64(2), evs[0].at)
	assert.Equal(t, int64(4), evs[2].at)
}
