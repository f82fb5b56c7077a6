package orderedset_test

import (
	"testing"

	"github.com/lestrrat-go/xni/internal/orderedset"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := orderedset.New[string]()
	require.True(t, s.Add("b"))
	require.True(t, s.Add("a"))
	require.False(t, s.Add("b"), "duplicate Add reports false")

	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"b", "a"}, s.Values())
	require.True(t, s.Has("a"))
	require.False(t, s.Has("c"))

	var seen []string
	for k := range s.All() {
		seen = append(seen, k)
		break
	}
	require.Equal(t, []string{"b"}, seen)
}
