//go:build linux

package guard

import "golang.org/x/sys/unix"

// ThreadID returns the kernel id of the calling OS thread.
func ThreadID() uint64 { return uint64(unix.Gettid()) }
