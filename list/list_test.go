package list_test

import (
	"math/rand"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seqassert "github.com/seqkit/seqkit-go/internal/assert"
	"github.com/seqkit/seqkit-go/list"
)

func collect[T any](l *list.List[T]) func() (T, bool) {
	it := l.Begin()
	return func() (T, bool) {
		var zero T
		if it.Equal(l.End()) {
			return zero, false
		}
		val := it.Value()
		it.Next()
		return val, true
	}
}

func TestListNew(t *testing.T) {
	l := list.New[int]()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
	assert.True(t, l.Begin().Equal(l.End()))
}

func TestListNewSized(t *testing.T) {
	l := list.NewSized(4, "x")
	assert.Equal(t, 4, l.Len())
	seqassert.Sequence(t, collect(l), "x", "x", "x", "x")

	assert.Panics(t, func() { list.NewSized(-1, 0) })
}

func TestListPushEnds(t *testing.T) {
	l := list.New[int]()

	// push onto an empty list sets both ends
	l.PushBack(2)
	assert.Equal(t, 2, l.Front())
	assert.Equal(t, 2, l.Back())

	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Front())
	assert.Equal(t, 3, l.Back())
	seqassert.Sequence(t, collect(l), 1, 2, 3)
}

func TestListPopEnds(t *testing.T) {
	l := list.New[int]()
	for _, n := range []int{1, 2, 3} {
		l.PushBack(n)
	}

	l.PopFront()
	assert.Equal(t, 2, l.Len())
	seqassert.Sequence(t, collect(l), 2, 3)

	l.PopBack()
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, l.Front())
	assert.Equal(t, 2, l.Back())

	// popping the only node resets both ends
	l.PopBack()
	assert.True(t, l.Empty())
	assert.False(t, l.PeekFront().IsPresent())
	assert.False(t, l.PeekBack().IsPresent())

	// pop on empty is a no-op
	l.PopFront()
	l.PopBack()
	assert.Equal(t, 0, l.Len())
}

func TestListTraversalBothWays(t *testing.T) {
	l := list.New[int]()
	want := []int{5, 10, 15, 20, 25}
	for _, n := range want {
		l.PushBack(n)
	}

	// forward walk visits every element in order and counts Len() nodes
	var forward []int
	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
		forward = append(forward, it.Value())
	}
	assert.Equal(t, want, forward)
	assert.Equal(t, l.Len(), len(forward))

	// backward walk from End() visits the same elements reversed
	var backward []int
	for it := l.End(); !it.Equal(l.Begin()); {
		it.Prev()
		backward = append(backward, it.Value())
	}
	require.Equal(t, len(forward), len(backward))
	for i := range forward {
		assert.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestListCloneIndependence(t *testing.T) {
	orig := list.New[int]()
	for _, n := range []int{1, 2, 3} {
		orig.PushBack(n)
	}

	cp := orig.Clone()
	cp.PushBack(4)
	cp.PopFront()

	assert.Equal(t, 3, orig.Len())
	seqassert.Sequence(t, collect(orig), 1, 2, 3)
	seqassert.Sequence(t, collect(cp), 2, 3, 4)
}

func TestListAssign(t *testing.T) {
	src := list.New[int]()
	for _, n := range []int{7, 8, 9} {
		src.PushBack(n)
	}

	dst := list.NewSized(5, 0)
	dst.Assign(src)
	assert.Equal(t, 3, dst.Len())
	seqassert.Sequence(t, collect(dst), 7, 8, 9)

	// no node is shared with the source
	dst.PopFront()
	seqassert.Sequence(t, collect(src), 7, 8, 9)

	// self-assignment must not clear the list
	dst.Assign(dst)
	assert.Equal(t, 2, dst.Len())
	seqassert.Sequence(t, collect(dst), 8, 9)
}

func TestListInsert(t *testing.T) {
	l := list.New[int]()

	// insert at begin of an empty list is a push front
	first := l.Insert(l.Begin(), 2)
	assert.Equal(t, 2, first.Value())
	assert.Equal(t, 1, l.Len())

	// insert at end appends
	ret := l.Insert(l.End(), 4)
	assert.Equal(t, 4, ret.Value())
	assert.Equal(t, 4, l.Back())

	// interior insert splices before the position
	pos := l.Begin()
	pos.Next()
	ret = l.Insert(pos, 3)
	assert.Equal(t, 3, ret.Value())
	seqassert.Sequence(t, collect(l), 2, 3, 4)

	l.Insert(l.Begin(), 1)
	seqassert.Sequence(t, collect(l), 1, 2, 3, 4)
}

func TestListEraseInterior(t *testing.T) {
	l := list.New[int]()
	for _, n := range []int{10, 20, 30} {
		l.PushBack(n)
	}

	pos := l.Begin()
	pos.Next()
	require.Equal(t, 20, pos.Value())

	ret := l.Erase(pos)
	assert.Equal(t, 2, l.Len())
	seqassert.Sequence(t, collect(l), 10, 30)

	// the returned position is the node after the erased one
	assert.Equal(t, 30, ret.Value())
}

func TestListEraseEnds(t *testing.T) {
	l := list.New[int]()
	for _, n := range []int{1, 2, 3} {
		l.PushBack(n)
	}

	ret := l.Erase(l.Begin())
	assert.Equal(t, 2, ret.Value())
	seqassert.Sequence(t, collect(l), 2, 3)

	// erasing the end position removes from the back
	l.Erase(l.End())
	seqassert.Sequence(t, collect(l), 2)

	// erase on an empty list is a no-op
	l.PopFront()
	l.Erase(l.Begin())
	assert.Equal(t, 0, l.Len())
}

func TestListClearAndResize(t *testing.T) {
	l := list.NewSized(6, 1)
	l.Clear()
	assert.True(t, l.Empty())

	l.Resize(3, 5)
	seqassert.Sequence(t, collect(l), 5, 5, 5)

	l.PushBack(9)
	l.Resize(2, 0)
	seqassert.Sequence(t, collect(l), 5, 5)

	// round trip: the size is restored, removed values are not
	l.Resize(4, 7)
	assert.Equal(t, 4, l.Len())
	seqassert.Sequence(t, collect(l), 5, 5, 7, 7)
}

func TestListPeek(t *testing.T) {
	l := list.New[string]()
	assert.False(t, l.PeekFront().IsPresent())
	assert.False(t, l.PeekBack().IsPresent())

	l.PushBack("a")
	l.PushBack("b")
	assert.Equal(t, "a", l.PeekFront().MustGet())
	assert.Equal(t, "b", l.PeekBack().MustGet())
}

func TestListString(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	assert.Equal(t, "[1 2]", l.String())
}

// TestListDequeOracle runs a randomized sequence of end operations against a
// deque holding the same values and checks the list agrees at every step.
func TestListDequeOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x115c))
	l := list.New[int]()
	oracle := deque.New[int]()

	for i := 0; i < 1000; i++ {
		switch op := rnd.Intn(4); {
		case op == 0:
			n := rnd.Int()
			l.PushFront(n)
			oracle.PushFront(n)
		case op == 1:
			n := rnd.Int()
			l.PushBack(n)
			oracle.PushBack(n)
		case op == 2 && oracle.Len() > 0:
			l.PopFront()
			oracle.PopFront()
		case op == 3 && oracle.Len() > 0:
			l.PopBack()
			oracle.PopBack()
		}
		require.Equal(t, oracle.Len(), l.Len())
		if oracle.Len() > 0 {
			require.Equal(t, oracle.Front(), l.Front())
			require.Equal(t, oracle.Back(), l.Back())
		}
	}

	i := 0
	for it := l.Begin(); !it.Equal(l.End()); it.Next() {
		require.Equal(t, oracle.At(i), it.Value())
		i++
	}
	require.Equal(t, oracle.Len(), i)
}
