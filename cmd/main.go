package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/seqkit/seqkit-go/list"
	"github.com/seqkit/seqkit-go/vector"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	vec := vector.New[int](vector.Options{Log: log})
	for i := 1; i <= 12; i++ {
		vec.PushBack(i * 10)
	}
	fmt.Println("vector:", vec, "size:", vec.Len(), "cap:", vec.Cap())

	val, _ := vec.At(2)
	fmt.Println("At(2):", val)

	if _, err := vec.At(99); errors.Is(err, vector.ErrOutOfRange) {
		fmt.Println("At(99):", err)
	}

	pos := vec.Begin()
	pos.Advance(3)
	vec.Erase(pos)
	fmt.Println("after erase:", vec)

	l := list.New[string](list.Options{Log: log})
	l.PushBack("beta")
	l.PushFront("alpha")
	l.PushBack("gamma")
	fmt.Println("list:", l, "front:", l.Front(), "back:", l.Back())

	it := l.Begin()
	it.Next()
	next := l.Erase(it)
	fmt.Println("after erase:", l, "returned position:", next.Value())
}
