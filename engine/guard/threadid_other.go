//go:build !linux && !windows

package guard

import (
	"bytes"
	"runtime"
	"strconv"
)

// ThreadID returns the id of the calling goroutine. Sessions lock their
// goroutine to one OS thread, so the goroutine stands in for the thread on
// platforms without a cheap thread id call.
func ThreadID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
