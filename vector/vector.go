// Package vector provides a contiguous growable array with explicit capacity
// control and positional insert/erase.
//
// A Vector exclusively owns one backing buffer at a time. Slots [0, Len())
// hold live elements; slots [Len(), Cap()) hold zero values and are not
// observable through the checked surface. Element types need nothing beyond
// what Go gives every type: a zero value and assignability.
//
// Vectors are not safe for concurrent use. A caller that shares one across
// goroutines must supply its own synchronization.
package vector

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kapetan-io/tackle/set"
	"github.com/oklog/ulid/v2"
	"github.com/samber/mo"

	"github.com/seqkit/seqkit-go/internal/assert"
)

// minCapacity is the smallest buffer a Vector ever allocates.
const minCapacity = 10

// Options configure a Vector at construction.
type Options struct {
	// Log receives growth events at Debug and dropped inserts at Warn.
	// Defaults to slog.Default().
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
// Vector
// ------------------------------------------------

type Vector[T any] struct {
	// buf always has len(buf) == Cap(); slots at or beyond size are zero
	buf  []T
	size int

	// gen is bumped whenever the buffer is reallocated. Iterators carry the
	// gen they were issued under, so a deref after reallocation is detected.
	gen uint64

	id  ulid.ULID
	log *slog.Logger
}

// New returns an empty Vector with the minimum capacity.
func New[T any](opts ...Options) *Vector[T] {
	var zero T
	return NewSized(0, zero, opts...)
}

// NewSized returns a Vector holding n copies of val, with capacity
// max(10, 2n). Panics if n is negative.
func NewSized[T any](n int, val T, opts ...Options) *Vector[T] {
	assert.True(n >= 0, "vector size must be non-negative, got %d", n)
	o := buildOptions(opts)

	capacity := 2 * n
	if capacity < minCapacity {
		capacity = minCapacity
	}
	v := &Vector[T]{
		buf: make([]T, capacity),
		id:  ulid.Make(),
		log: o.Log,
	}
	for i := 0; i < n; i++ {
		v.buf[i] = val
	}
	v.size = n
	return v
}

// Clone returns an independent copy. The new Vector gets its own buffer of
// the same capacity, and the full capacity worth of slots is copied, zero
// tail included. Mutating the clone never touches the original.
func (v *Vector[T]) Clone() *Vector[T] {
	buf := make([]T, len(v.buf))
	copy(buf, v.buf)
	return &Vector[T]{
		buf:  buf,
		size: v.size,
		id:   ulid.Make(),
		log:  v.log,
	}
}

// Assign replaces the contents of v with a copy of other. The old buffer is
// released and a fresh one of exactly other.Cap() is allocated; only the live
// elements are copied. Self-assignment is a no-op. All outstanding iterators
// into v are invalidated.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	buf := make([]T, len(other.buf))
	copy(buf, other.buf[:other.size])
	v.buf = buf
	v.size = other.size
	v.gen++
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the capacity of the backing buffer.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether the Vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Reserve grows the backing buffer to capacity c. A request at or below the
// current capacity is a no-op; capacity never shrinks. On growth the live
// elements are copied into the new buffer, the old buffer is released, and
// every outstanding iterator is invalidated.
func (v *Vector[T]) Reserve(c int) {
	if c <= len(v.buf) {
		return
	}
	buf := make([]T, c)
	copy(buf, v.buf[:v.size])
	v.buf = buf
	v.gen++
	v.log.Debug("vector buffer reallocated",
		"id", v.id.String(), "cap", c, "size", v.size)
}

// PushBack appends val, doubling the capacity when the buffer is full.
// Amortized O(1).
func (v *Vector[T]) PushBack(val T) {
	if v.size == len(v.buf) {
		v.Reserve(len(v.buf) * 2)
	}
	v.buf[v.size] = val
	v.size++
}

// PushBackIncremental appends val, growing the capacity by exactly one slot
// when the buffer is full. O(n) worst case; exists so callers can exercise
// the incremental growth policy against the doubling one.
func (v *Vector[T]) PushBackIncremental(val T) {
	if v.size == len(v.buf) {
		v.Reserve(len(v.buf) + 1)
	}
	v.buf[v.size] = val
	v.size++
}

// PopBack removes the last element, resetting its slot to the zero value.
// No-op when empty. Capacity is never reduced.
func (v *Vector[T]) PopBack() {
	if v.Empty() {
		return
	}
	var zero T
	v.buf[v.size-1] = zero
	v.size--
}

// At returns the element at index i, or ErrOutOfRange when i is negative or
// at or beyond Len(). The Vector is left unmodified on error.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.buf[i], nil
}

// Get is the unchecked counterpart of At. An index past Len() but within
// capacity reads an unspecified slot; an index past capacity panics. The
// caller assumes responsibility for i being in range.
func (v *Vector[T]) Get(i int) T {
	return v.buf[i]
}

// Set writes val at index i without a range check. Same contract as Get.
func (v *Vector[T]) Set(i int, val T) {
	v.buf[i] = val
}

// Front returns the first element. Undefined on an empty Vector.
func (v *Vector[T]) Front() T {
	return v.buf[0]
}

// Back returns the last element. Undefined on an empty Vector.
func (v *Vector[T]) Back() T {
	return v.buf[v.size-1]
}

// PeekFront returns the first element, or None when empty.
func (v *Vector[T]) PeekFront() mo.Option[T] {
	if v.Empty() {
		return mo.None[T]()
	}
	return mo.Some(v.buf[0])
}

// PeekBack returns the last element, or None when empty.
func (v *Vector[T]) PeekBack() mo.Option[T] {
	if v.Empty() {
		return mo.None[T]()
	}
	return mo.Some(v.buf[v.size-1])
}

// Insert places val before pos, shifting pos and everything after it one
// slot rightward, and returns the position of the new element.
//
// When the Vector is already full the value is dropped and pos is returned
// unchanged; the drop is logged at Warn. This mirrors the long-standing
// observable behavior of positional insert never growing the buffer; callers
// that need growth call Reserve or PushBack. Iterators before pos stay
// valid; iterators at or after pos denote shifted content.
func (v *Vector[T]) Insert(pos Iterator[T], val T) Iterator[T] {
	assert.True(pos.vec == v, "iterator does not belong to this vector")
	assert.True(pos.gen == v.gen, "iterator invalidated by reallocation")
	assert.True(pos.idx >= 0 && pos.idx <= v.size,
		"insert position %d out of range, size %d", pos.idx, v.size)

	if v.size == len(v.buf) {
		v.log.Warn("insert on a full vector drops the value",
			"id", v.id.String(), "cap", len(v.buf))
		return pos
	}
	copy(v.buf[pos.idx+1:v.size+1], v.buf[pos.idx:v.size])
	v.buf[pos.idx] = val
	v.size++
	return Iterator[T]{vec: v, idx: pos.idx, gen: v.gen}
}

// Erase removes the element at pos, shifting everything after it one slot
// leftward and zeroing the vacated slot. Returns an iterator for the same
// index, which now denotes the element that followed the erased one, or is
// past-the-end. No-op on an empty Vector. Iterators before pos stay valid;
// iterators at or after pos denote shifted content.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if v.Empty() {
		return pos
	}
	assert.True(pos.vec == v, "iterator does not belong to this vector")
	assert.True(pos.gen == v.gen, "iterator invalidated by reallocation")
	assert.True(pos.idx >= 0 && pos.idx < v.size,
		"erase position %d out of range, size %d", pos.idx, v.size)

	copy(v.buf[pos.idx:v.size-1], v.buf[pos.idx+1:v.size])
	var zero T
	v.buf[v.size-1] = zero
	v.size--
	return Iterator[T]{vec: v, idx: pos.idx, gen: v.gen}
}

// Clear removes all elements from the back. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	for !v.Empty() {
		v.PopBack()
	}
}

// Resize pops from the back until Len() == n when shrinking, or appends val
// until Len() == n when growing. Panics if n is negative.
func (v *Vector[T]) Resize(n int, val T) {
	assert.True(n >= 0, "vector size must be non-negative, got %d", n)
	for v.size > n {
		v.PopBack()
	}
	for v.size < n {
		v.PushBack(val)
	}
}

// Begin returns an iterator at the first element. Equal to End() when empty.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, idx: 0, gen: v.gen}
}

// End returns the past-the-end iterator. It never dereferences.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, idx: v.size, gen: v.gen}
}

// String renders the live elements for logs and debugging.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v.buf[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
