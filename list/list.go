// Package list provides a doubly-linked list with O(1) operations at both
// ends and positional insert/erase through bidirectional iterators.
//
// The list exclusively owns its nodes; a node is created by exactly one
// insertion and unlinked by exactly one removal (or Clear). Element types
// need nothing beyond a zero value and assignability.
//
// Lists are not safe for concurrent use. A caller that shares one across
// goroutines must supply its own synchronization.
package list

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kapetan-io/tackle/set"
	"github.com/oklog/ulid/v2"
	"github.com/samber/mo"

	"github.com/seqkit/seqkit-go/internal/assert"
)

// Options configure a List at construction.
type Options struct {
	// Log defaults to slog.Default().
	Log *slog.Logger
}

func DefaultOptions() Options {
	return Options{}
}

func buildOptions(opts []Options) Options {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	set.Default(&o.Log, slog.Default())
	return o
}

// ------------------------------------------------
// List
// ------------------------------------------------

type node[T any] struct {
	val  T
	prev *node[T]
	next *node[T]

	// dead marks a node that has been unlinked, so a stale iterator into it
	// is detected on dereference instead of walking freed links
	dead bool
}

// drop severs the node from the chain. Iterators holding it will fail the
// dead check from here on.
func (n *node[T]) drop() {
	n.prev = nil
	n.next = nil
	n.dead = true
}

type List[T any] struct {
	// head and tail are both nil exactly when size == 0; otherwise
	// head.prev and tail.next are nil and prev/next links form a single
	// chain of exactly size nodes
	head *node[T]
	tail *node[T]
	size int

	id  ulid.ULID
	log *slog.Logger
}

// New returns an empty List.
func New[T any](opts ...Options) *List[T] {
	o := buildOptions(opts)
	return &List[T]{
		id:  ulid.Make(),
		log: o.Log,
	}
}

// NewSized returns a List holding n copies of val. Panics if n is negative.
func NewSized[T any](n int, val T, opts ...Options) *List[T] {
	assert.True(n >= 0, "list size must be non-negative, got %d", n)
	l := New[T](opts...)
	for i := 0; i < n; i++ {
		l.PushBack(val)
	}
	return l
}

// Clone returns an independent copy built by appending the source values
// front-to-back into a fresh list. No node is shared with the original.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{
		id:  ulid.Make(),
		log: l.log,
	}
	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.val)
	}
	return out
}

// Assign replaces the contents of l with a copy of other. The current nodes
// are all released first, then the source is walked front-to-back and each
// value appended. Self-assignment is a no-op, since clearing the destination
// would also clear the source.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	for n := other.head; n != nil; n = n.next {
		l.PushBack(n.val)
	}
	l.log.Debug("list reassigned", "id", l.id.String(), "size", l.size)
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the List holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront prepends val in O(1). On an empty list the new node becomes both
// head and tail.
func (l *List[T]) PushFront(val T) {
	n := &node[T]{val: val, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PushBack appends val in O(1). On an empty list the new node becomes both
// head and tail.
func (l *List[T]) PushBack(val T) {
	n := &node[T]{val: val, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the first node in O(1). No-op when empty; removing the
// only node resets both head and tail.
func (l *List[T]) PopFront() {
	if l.head == nil {
		return
	}
	n := l.head
	if l.size == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = n.next
		l.head.prev = nil
	}
	n.drop()
	l.size--
}

// PopBack removes the last node in O(1). No-op when empty; removing the only
// node resets both head and tail.
func (l *List[T]) PopBack() {
	if l.tail == nil {
		return
	}
	n := l.tail
	if l.size == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = n.prev
		l.tail.next = nil
	}
	n.drop()
	l.size--
}

// Front returns the first element. Undefined on an empty list.
func (l *List[T]) Front() T {
	return l.head.val
}

// Back returns the last element. Undefined on an empty list.
func (l *List[T]) Back() T {
	return l.tail.val
}

// PeekFront returns the first element, or None when empty.
func (l *List[T]) PeekFront() mo.Option[T] {
	if l.head == nil {
		return mo.None[T]()
	}
	return mo.Some(l.head.val)
}

// PeekBack returns the last element, or None when empty.
func (l *List[T]) PeekBack() mo.Option[T] {
	if l.tail == nil {
		return mo.None[T]()
	}
	return mo.Some(l.tail.val)
}

// Insert places val before pos and returns the position of the new node.
// The begin position delegates to PushFront and the end position to
// PushBack; anywhere else a node is spliced in by relinking the two
// neighbors. Iterators to other nodes remain valid.
func (l *List[T]) Insert(pos Iterator[T], val T) Iterator[T] {
	assert.True(pos.list == l, "iterator does not belong to this list")
	switch {
	case pos.Equal(l.Begin()):
		l.PushFront(val)
		return Iterator[T]{list: l, n: l.head}
	case pos.Equal(l.End()):
		l.PushBack(val)
		return Iterator[T]{list: l, n: l.tail}
	default:
		assert.True(!pos.n.dead, "insert at an erased position")
		n := &node[T]{val: val, prev: pos.n.prev, next: pos.n}
		pos.n.prev.next = n
		pos.n.prev = n
		l.size++
		return Iterator[T]{list: l, n: n}
	}
}

// Erase removes the node at pos and returns the position that logically
// follows it. The begin position delegates to PopFront and the end position
// to PopBack; anywhere else the two neighbors are relinked and the node
// released. Iterators to other nodes remain valid; iterators to the erased
// node panic on dereference from here on.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	assert.True(pos.list == l, "iterator does not belong to this list")
	switch {
	case pos.Equal(l.Begin()):
		l.PopFront()
		return l.Begin()
	case pos.Equal(l.End()):
		l.PopBack()
		return l.End()
	default:
		assert.True(!pos.n.dead, "erase at an already erased position")
		n := pos.n
		if n.next == nil {
			// tail node reached through an iterator rather than End()
			l.PopBack()
			return l.End()
		}
		next := n.next
		n.prev.next = n.next
		n.next.prev = n.prev
		n.drop()
		l.size--
		return Iterator[T]{list: l, n: next}
	}
}

// Clear removes every node from the front until the list is empty.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

// Resize appends val until Len() == n when growing, or pops from the back
// until Len() == n when shrinking. Panics if n is negative.
func (l *List[T]) Resize(n int, val T) {
	assert.True(n >= 0, "list size must be non-negative, got %d", n)
	for l.size < n {
		l.PushBack(val)
	}
	for l.size > n {
		l.PopBack()
	}
}

// Begin returns an iterator at the first node. Equal to End() when empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, n: l.head}
}

// End returns the past-the-end iterator. It never dereferences, but
// decrementing it lands on the last node.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l}
}

// String renders the elements for logs and debugging.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}
