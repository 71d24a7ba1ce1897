package assert

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}

// Sequence is a test helper to verify that successive calls to next yield
// exactly the values in want, in order, and then report exhaustion.
func Sequence[T any](t *testing.T, next func() (T, bool), want ...T) {
	t.Helper()
	for i, w := range want {
		got, ok := next()
		if !assert2.True(t, ok, "sequence ended early, want %d elements got %d", len(want), i) {
			return
		}
		assert2.Equal(t, w, got, "element %d", i)
	}
	_, ok := next()
	assert2.False(t, ok, "sequence yields more than the %d expected elements", len(want))
}
