package stack_test

import (
	"testing"

	"github.com/lestrrat-go/xni/internal/stack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s stack.Stack[string]
	_, ok := s.Top()
	require.False(t, ok, "Top on empty stack")

	s.Push("a")
	s.Push("b")
	s.Push("c")
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"b", "c"}, s.Peek(2))
	require.Equal(t, []string{"a", "b", "c"}, s.Peek(10))

	top, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, "c", top)

	s.Pop()
	require.Equal(t, 2, s.Len())
	require.Equal(t, "a", s.At(0))

	s.Pop(5)
	require.Equal(t, 0, s.Len())
}

func TestStackShrink(t *testing.T) {
	var s stack.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	s.Truncate(10)
	require.Equal(t, 10, s.Len())
	require.LessOrEqual(t, s.Cap(), 20, "storage should be released after a large pop")
	require.Equal(t, 9, s.At(9))
}
