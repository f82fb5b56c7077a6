package encoding_test

import (
	"testing"

	"github.com/lestrrat-go/xni/encoding"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

func TestLoad(t *testing.T) {
	require.Equal(t, charmap.Windows1252, encoding.Load("ISO-8859-1"))
	require.Equal(t, charmap.Windows1252, encoding.Load("iso_8859_1"))
	require.Equal(t, japanese.ShiftJIS, encoding.Load("Shift_JIS"))
	require.Equal(t, charmap.KOI8U, encoding.Load("KOI8-U"))
	require.Nil(t, encoding.Load("x-bogus"))
	require.Nil(t, encoding.Load(""))

	require.True(t, encoding.IsUTF8(""))
	require.True(t, encoding.IsUTF8("UTF-8"))
	require.True(t, encoding.IsUTF8("utf8"))
	require.False(t, encoding.IsUTF8("UTF-16"))
}

func TestISO88591(t *testing.T) {
	e := encoding.Load("iso-8859-1")
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		// 0x80-0x9f are the windows-1252 extensions
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)
		require.Equal(t, string(rune(i)), s, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, v1, "round trip %#x", i)
	}
}

func TestUTF16(t *testing.T) {
	e := encoding.Load("UTF-16LE")
	s, err := e.NewDecoder().String("a\x00b\x00")
	require.NoError(t, err)
	require.Equal(t, "ab", s)
}
