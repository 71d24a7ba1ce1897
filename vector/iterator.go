package vector

import (
	"github.com/seqkit/seqkit-go/internal/assert"
)

// Iterator is a random-access position handle into a Vector. It holds an
// index and the buffer generation it was issued under, never a raw slot
// address.
//
// Validity scope: reallocation (Reserve, growth during push, Assign)
// invalidates every outstanding Iterator, and a dereference after that
// panics. Insert and Erase do not reallocate: positions before the mutation
// point remain correct, positions at or after it silently denote the shifted
// contents and should be discarded.
type Iterator[T any] struct {
	vec *Vector[T]
	idx int
	gen uint64
}

// Next advances the position by one.
func (it *Iterator[T]) Next() {
	it.idx++
}

// Prev moves the position back by one.
func (it *Iterator[T]) Prev() {
	it.idx--
}

// Advance moves the position by n, which may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.idx += n
}

// Index returns the position as an offset from Begin().
func (it Iterator[T]) Index() int {
	return it.idx
}

// Equal reports whether both iterators denote the same slot of the same
// Vector. Positions compare by identity, not by element value.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx
}

// Valid reports whether a dereference would succeed.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.gen == it.vec.gen && it.idx >= 0 && it.idx < it.vec.size
}

// Value returns the element at the position. Panics on an end, unbound, or
// invalidated iterator.
func (it Iterator[T]) Value() T {
	it.check()
	return it.vec.buf[it.idx]
}

// SetValue overwrites the element at the position. Same contract as Value.
func (it Iterator[T]) SetValue(val T) {
	it.check()
	it.vec.buf[it.idx] = val
}

func (it Iterator[T]) check() {
	assert.True(it.vec != nil, "iterator is not bound to a vector")
	assert.True(it.gen == it.vec.gen, "iterator invalidated by reallocation")
	assert.True(it.idx >= 0 && it.idx < it.vec.size,
		"iterator position %d out of range, size %d", it.idx, it.vec.size)
}
