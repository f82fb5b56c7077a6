// Package nsstack implements the scoped namespace bindings used by
// the scanner and read by the event adapter.
package nsstack

import (
	"github.com/lestrrat-go/xni/internal/stack"
)

const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

type Item struct {
	prefix string
	href   string
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

// Stack holds prefix bindings grouped into element contexts. Each
// context remembers where its declarations start, so the bindings
// introduced by the current element can be listed in declaration
// order.
type Stack struct {
	items    stack.Stack[Item]
	contexts stack.Stack[int]
}

// New creates a Stack with the xml and xmlns prefixes bound in the
// outermost context.
func New() *Stack {
	s := &Stack{}
	s.Reset()
	return s
}

// Reset discards every binding and context except the built-in ones.
func (s *Stack) Reset() {
	s.items.Reset()
	s.contexts.Reset()
	s.items.Push(Item{prefix: "xml", href: XMLNamespace})
	s.items.Push(Item{prefix: "xmlns", href: XMLNSNamespace})
	s.contexts.Push(s.items.Len())
}

func (s *Stack) PushContext() {
	s.contexts.Push(s.items.Len())
}

// PopContext drops the bindings declared in the current context. The
// outermost context is never popped.
func (s *Stack) PopContext() {
	if s.contexts.Len() <= 1 {
		return
	}
	start, _ := s.contexts.Top()
	s.contexts.Pop()
	s.items.Truncate(start)
}

// DeclarePrefix binds prefix to uri in the current context. The xml
// and xmlns prefixes cannot be rebound. Declaring a prefix twice in
// the same context replaces the URI and keeps the original position.
func (s *Stack) DeclarePrefix(prefix, uri string) bool {
	if prefix == "xml" || prefix == "xmlns" {
		return false
	}
	start, _ := s.contexts.Top()
	for i := start; i < s.items.Len(); i++ {
		if s.items.At(i).prefix == prefix {
			s.items.Set(i, Item{prefix: prefix, href: uri})
			return true
		}
	}
	s.items.Push(Item{prefix: prefix, href: uri})
	return true
}

// URI returns the URI bound to prefix. An empty URI (an undeclaration)
// is reported as unbound.
func (s *Stack) URI(prefix string) (string, bool) {
	for i := s.items.Len() - 1; i >= 0; i-- {
		if item := s.items.At(i); item.prefix == prefix {
			if item.href == "" {
				return "", false
			}
			return item.href, true
		}
	}
	return "", false
}

// Lookup is URI without the found flag.
func (s *Stack) Lookup(prefix string) string {
	uri, _ := s.URI(prefix)
	return uri
}

func (s *Stack) DeclaredPrefixCount() int {
	start, _ := s.contexts.Top()
	return s.items.Len() - start
}

func (s *Stack) DeclaredPrefixAt(i int) string {
	start, _ := s.contexts.Top()
	return s.items.At(start + i).prefix
}

// Depth is the number of contexts pushed on top of the outermost one.
func (s *Stack) Depth() int {
	return s.contexts.Len() - 1
}

func (s *Stack) Len() int {
	return s.items.Len()
}
