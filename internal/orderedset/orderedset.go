// Package orderedset implements a set that remembers insertion order.
package orderedset

import "iter"

type Set[K comparable] struct {
	order   []K
	members map[K]struct{}
}

func New[K comparable]() *Set[K] {
	return &Set[K]{
		members: make(map[K]struct{}),
	}
}

// Add inserts key and reports whether it was new. Adding a member
// again does not move it.
func (s *Set[K]) Add(key K) bool {
	if _, ok := s.members[key]; ok {
		return false
	}
	s.order = append(s.order, key)
	s.members[key] = struct{}{}
	return true
}

func (s *Set[K]) Has(key K) bool {
	_, ok := s.members[key]
	return ok
}

func (s *Set[K]) Len() int {
	return len(s.order)
}

// Values returns a copy of the members in insertion order.
func (s *Set[K]) Values() []K {
	return append([]K(nil), s.order...)
}

func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.order {
			if !yield(k) {
				return
			}
		}
	}
}
