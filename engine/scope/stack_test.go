package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierr "github.com/hubastard/frameui/engine/errors"
)

type handle struct {
	name string
	dead bool
}

func (h *handle) Valid() bool { return !h.dead }

func TestPushPopOrder(t *testing.T) {
	s := New[string](0)
	s.Push("a")
	s.Push("b")
	assert.Equal(t, 2, s.Len())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "b", top)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = s.Pop()
	require.ErrorIs(t, err, uierr.ErrStackUnderflow)
}

func TestTopEmpty(t *testing.T) {
	s := New[int](4)
	_, err := s.Top()
	require.ErrorIs(t, err, uierr.ErrNoActiveScope)
}

func TestGrowsPastDefaultCapacity(t *testing.T) {
	s := New[int](DefaultCapacity)
	refs := make([]Ref[int], 0, 100)
	for i := 0; i < 100; i++ {
		refs = append(refs, s.Push(i))
	}
	assert.Equal(t, 100, s.Len())
	for i := len(refs) - 1; i >= 0; i-- {
		require.NoError(t, s.PopRef(refs[i]))
	}
	assert.Zero(t, s.Len())
}

func TestPopRefRejectsMismatch(t *testing.T) {
	s := New[string](0)
	outer := s.Push("outer")
	s.Push("inner")

	err := s.PopRef(outer)
	require.ErrorIs(t, err, uierr.ErrStackConsistency)
	assert.Equal(t, 2, s.Len(), "mismatched pop must not change the stack")

	other := New[string](0)
	require.ErrorIs(t, other.PopRef(outer), uierr.ErrStackConsistency)

	s.Reset()
	require.ErrorIs(t, s.PopRef(outer), uierr.ErrStackUnderflow)
}

func TestPopRefRejectsReusedDepth(t *testing.T) {
	s := New[string](0)
	old := s.Push("first")
	require.NoError(t, s.PopRef(old))
	s.Push("second")

	// Same depth, newer generation.
	require.ErrorIs(t, s.PopRef(old), uierr.ErrStackConsistency)
}

func TestRefDanglesAfterPop(t *testing.T) {
	s := New[*handle](0)
	h := &handle{name: "group"}
	ref := s.Push(h)

	got, err := ref.Get()
	require.NoError(t, err)
	assert.Same(t, h, got)
	assert.True(t, ref.Live())

	require.NoError(t, s.PopRef(ref))
	_, err = ref.Get()
	require.ErrorIs(t, err, uierr.ErrDanglingHandle)
	assert.False(t, ref.Live())

	var zero Ref[*handle]
	_, err = zero.Get()
	require.ErrorIs(t, err, uierr.ErrDanglingHandle)
}

func TestInvalidValueDangles(t *testing.T) {
	s := New[*handle](0)
	h := &handle{name: "collapsing"}
	ref := s.Push(h)
	h.dead = true

	_, err := s.Top()
	require.ErrorIs(t, err, uierr.ErrDanglingHandle)
	_, err = ref.Get()
	require.ErrorIs(t, err, uierr.ErrDanglingHandle)
}

func TestTruncate(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	keep := s.Push(2)
	drop := s.Push(3)
	s.Push(4)

	s.Truncate(2)
	assert.Equal(t, 2, s.Len())
	assert.True(t, keep.Live())
	assert.False(t, drop.Live())

	s.Truncate(5)
	assert.Equal(t, 2, s.Len())
	s.Truncate(-1)
	assert.Zero(t, s.Len())
}
