// Package scope implements the LIFO stack of region handles that widget
// functions read to find where to draw.
//
// Entries are non-owning: the value pushed is only valid while the scope call
// that produced it is running. Every Push hands back a Ref whose generation
// stops resolving once the entry is popped, so a handle that escapes its scope
// fails loudly instead of touching a dead region.
package scope

import (
	uierr "github.com/hubastard/frameui/engine/errors"
)

// DefaultCapacity is the nesting depth the stack reserves up front. Deeper
// nesting grows the backing slice.
const DefaultCapacity = 32

// Validator is implemented by values that can report they no longer refer to
// a live native region.
type Validator interface {
	Valid() bool
}

type entry[T any] struct {
	value T
	gen   uint64
}

// Stack is a generation-checked LIFO of region handles. It is not safe for
// concurrent use; the run guard keeps it on a single thread.
type Stack[T any] struct {
	list    []entry[T]
	nextGen uint64
}

// Ref identifies one pushed entry. It resolves only while that entry is still
// on the stack.
type Ref[T any] struct {
	stack *Stack[T]
	depth int
	gen   uint64
}

// New returns an empty stack with room for capacity entries before growing.
func New[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack[T]{list: make([]entry[T], 0, capacity)}
}

// Len reports the current depth.
func (s *Stack[T]) Len() int { return len(s.list) }

// Push appends v and returns a reference to the new entry.
func (s *Stack[T]) Push(v T) Ref[T] {
	s.nextGen++
	s.list = append(s.list, entry[T]{value: v, gen: s.nextGen})
	return Ref[T]{stack: s, depth: len(s.list) - 1, gen: s.nextGen}
}

// Pop removes and returns the tail.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.list) == 0 {
		return zero, uierr.New("scope.Pop", uierr.KindStackUnderflow, nil)
	}
	i := len(s.list) - 1
	v := s.list[i].value
	s.list[i] = entry[T]{}
	s.list = s.list[:i]
	return v, nil
}

// PopRef pops the tail only if it is the entry ref was issued for. Anything
// else means pushes and pops were not well nested.
func (s *Stack[T]) PopRef(ref Ref[T]) error {
	if ref.stack != s {
		return uierr.Newf("scope.PopRef", uierr.KindStackConsistency, "reference belongs to another stack")
	}
	if len(s.list) == 0 {
		return uierr.New("scope.PopRef", uierr.KindStackUnderflow, nil)
	}
	top := len(s.list) - 1
	if top != ref.depth || s.list[top].gen != ref.gen {
		return uierr.Newf("scope.PopRef", uierr.KindStackConsistency,
			"tail is depth %d gen %d, expected depth %d gen %d", top, s.list[top].gen, ref.depth, ref.gen)
	}
	_, err := s.Pop()
	return err
}

// Top returns the tail without removing it.
func (s *Stack[T]) Top() (T, error) {
	var zero T
	if len(s.list) == 0 {
		return zero, uierr.New("scope.Top", uierr.KindNoActiveScope, nil)
	}
	v := s.list[len(s.list)-1].value
	if !valid(v) {
		return zero, uierr.New("scope.Top", uierr.KindDanglingHandle, nil)
	}
	return v, nil
}

// Truncate drops entries above depth n. Outstanding refs to them stop
// resolving.
func (s *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.list) {
		return
	}
	clear(s.list[n:])
	s.list = s.list[:n]
}

// Reset drops every entry. Outstanding refs stop resolving.
func (s *Stack[T]) Reset() {
	clear(s.list)
	s.list = s.list[:0]
}

// Get resolves the reference.
func (r Ref[T]) Get() (T, error) {
	var zero T
	s := r.stack
	if s == nil || r.depth >= len(s.list) || s.list[r.depth].gen != r.gen {
		return zero, uierr.New("scope.Ref.Get", uierr.KindDanglingHandle, nil)
	}
	v := s.list[r.depth].value
	if !valid(v) {
		return zero, uierr.New("scope.Ref.Get", uierr.KindDanglingHandle, nil)
	}
	return v, nil
}

// Live reports whether the reference still resolves.
func (r Ref[T]) Live() bool {
	_, err := r.Get()
	return err == nil
}

func valid(v any) bool {
	if vv, ok := v.(Validator); ok {
		return vv.Valid()
	}
	return true
}
