package guard

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierr "github.com/hubastard/frameui/engine/errors"
)

func TestAcquireIsExclusive(t *testing.T) {
	var g Guard
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tok, err := g.Acquire()
	require.NoError(t, err)
	assert.True(t, g.Held())
	assert.Equal(t, ThreadID(), g.Owner())
	assert.True(t, tok.Valid())

	_, err = g.Acquire()
	require.ErrorIs(t, err, uierr.ErrAlreadyRunning)

	tok.Release()
	assert.False(t, g.Held())
	assert.Zero(t, g.Owner())
	assert.False(t, tok.Valid())
}

func TestConcurrentAcquireOneWinner(t *testing.T) {
	var g Guard
	const n = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*Token
		losers  int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			<-start
			tok, err := g.Acquire()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, uierr.ErrAlreadyRunning)
				losers++
				return
			}
			winners = append(winners, tok)
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, n-1, losers)
	winners[0].Release()
	assert.False(t, g.Held())
}

func TestCheckOwner(t *testing.T) {
	var g Guard
	require.ErrorIs(t, g.CheckOwner("ui.Label"), uierr.ErrNoActiveFrame)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	tok, err := g.Acquire()
	require.NoError(t, err)
	defer tok.Release()

	require.NoError(t, g.CheckOwner("ui.Label"))

	errc := make(chan error, 1)
	go func() { errc <- g.CheckOwner("ui.Label") }()
	err = <-errc
	require.ErrorIs(t, err, uierr.ErrNoActiveFrame)
	assert.Contains(t, err.Error(), "owned by thread")
}

func TestStaleTokenReleaseIsNoop(t *testing.T) {
	var g Guard
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first, err := g.Acquire()
	require.NoError(t, err)
	first.Release()
	first.Release()

	second, err := g.Acquire()
	require.NoError(t, err)
	first.Release()
	assert.True(t, g.Held(), "stale token must not free a newer session")
	assert.True(t, second.Valid())

	second.Release()
	assert.False(t, g.Held())

	var nilTok *Token
	nilTok.Release()
	assert.False(t, nilTok.Valid())
}
