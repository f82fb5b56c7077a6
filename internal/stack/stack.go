package stack

// Stack is a LIFO of arbitrary items. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the top n items (1 if n is omitted).
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	s.Truncate(s.Len() - nn)
}

// Truncate drops everything above the first l items.
func (s *Stack[T]) Truncate(l int) {
	if l < 0 {
		l = 0
	}
	if l >= s.Len() {
		return
	}

	var zero T
	for i := l; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:l]

	if c := cap(s.items); c > 20 && c > len(s.items)*2 {
		s.items = append([]T(nil), s.items...)
	}
}

// Top returns the top item, and false if the stack is empty
func (s *Stack[T]) Top() (T, bool) {
	if l := s.Len(); l > 0 {
		return s.items[l-1], true
	}
	var zero T
	return zero, false
}

// Peek returns the top n items, bottom first. The returned slice
// shares storage with the stack.
func (s *Stack[T]) Peek(n int) []T {
	if l := s.Len(); l > n {
		return s.items[l-n : l]
	}
	return s.items
}

// At returns the i-th item counting from the bottom.
func (s *Stack[T]) At(i int) T {
	return s.items[i]
}

func (s *Stack[T]) Set(i int, v T) {
	s.items[i] = v
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

// Reset empties the stack, keeping its storage.
func (s *Stack[T]) Reset() {
	s.Truncate(0)
}
