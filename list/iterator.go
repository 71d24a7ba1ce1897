package list

import (
	"github.com/seqkit/seqkit-go/internal/assert"
)

// Iterator is a bidirectional position handle into a List. It holds the node
// it denotes; a nil node is the past-the-end sentinel.
//
// Validity scope: an Iterator stays valid until the node it denotes is
// erased, regardless of insertions or removals elsewhere in the chain. A
// dereference of an erased node panics.
type Iterator[T any] struct {
	list *List[T]
	n    *node[T]
}

// Next advances to the following node. Panics past-the-end or on an erased
// node.
func (it *Iterator[T]) Next() {
	assert.True(it.n != nil, "cannot advance the end iterator")
	assert.True(!it.n.dead, "iterator node has been erased")
	it.n = it.n.next
}

// Prev moves to the preceding node. Decrementing the end iterator lands on
// the last node. Panics on an erased node.
func (it *Iterator[T]) Prev() {
	if it.n == nil {
		assert.True(it.list != nil, "iterator is not bound to a list")
		it.n = it.list.tail
		return
	}
	assert.True(!it.n.dead, "iterator node has been erased")
	it.n = it.n.prev
}

// Equal reports whether both iterators denote the same node of the same
// list. Positions compare by node identity, not by element value.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.list == other.list && it.n == other.n
}

// Valid reports whether a dereference would succeed.
func (it Iterator[T]) Valid() bool {
	return it.list != nil && it.n != nil && !it.n.dead
}

// Value returns the element at the position. Panics on the end iterator or
// after the node has been erased.
func (it Iterator[T]) Value() T {
	it.check()
	return it.n.val
}

// SetValue overwrites the element at the position. Same contract as Value.
func (it Iterator[T]) SetValue(val T) {
	it.check()
	it.n.val = val
}

func (it Iterator[T]) check() {
	assert.True(it.list != nil, "iterator is not bound to a list")
	assert.True(it.n != nil, "cannot dereference the end iterator")
	assert.True(!it.n.dead, "iterator node has been erased")
}
