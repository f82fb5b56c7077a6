package xni

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/sax"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	require.NoError(t, translateError(nil, "1.0"))

	t.Run("positioned failure without a cause", func(t *testing.T) {
		err := translateError(&event.ParseError{
			Message:          "bad",
			PublicID:         "-//P//EN",
			LiteralSystemID:  "doc.xml",
			ExpandedSystemID: "file:///doc.xml",
			Line:             3,
			Column:           7,
		}, "1.1")

		var perr *sax.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, &sax.ParseError{
			Message:    "bad",
			PublicID:   "-//P//EN",
			SystemID:   "file:///doc.xml",
			Line:       3,
			Column:     7,
			XMLVersion: "1.1",
		}, perr)
	})
	t.Run("undecodable input", func(t *testing.T) {
		cause := &event.CharConversionError{Encoding: "UTF-8", Err: errors.New("invalid byte")}
		err := translateError(&event.ParseError{ExpandedSystemID: "file:///doc.xml", Line: 1, Column: 4, Err: cause}, "1.0")

		var perr *sax.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, cause.Error(), perr.Message)
		require.Equal(t, 4, perr.Column)
		require.ErrorIs(t, err, cause)
	})
	t.Run("sax causes are returned as is", func(t *testing.T) {
		cause := &sax.ParseError{Message: "from handler"}
		require.Same(t, cause, translateError(&event.ParseError{Err: cause}, "1.0"))

		stop := &sax.Error{Message: "stop"}
		require.Same(t, stop, translateError(&event.Exception{Err: stop}, "1.0"))
	})
	t.Run("wrapped sax causes are not wrapped again", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", &sax.Error{Message: "stop"})
		err := translateError(&event.Exception{Err: wrapped}, "1.0")
		require.Same(t, wrapped, err)
		require.True(t, sax.IsSAXError(err))
	})
	t.Run("io failures are returned as is", func(t *testing.T) {
		cause := &event.IOError{SystemID: "doc.xml", Err: fs.ErrNotExist}
		require.Same(t, cause, translateError(&event.ParseError{Message: "read", Err: cause}, "1.0"))

		pathErr := &fs.PathError{Op: "open", Path: "doc.xml", Err: fs.ErrNotExist}
		require.Same(t, pathErr, translateError(&event.Exception{Err: pathErr}, "1.0"))
	})
	t.Run("other causes are wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		err := translateError(&event.ParseError{Message: "x", Err: cause}, "1.0")
		var serr *sax.Error
		require.ErrorAs(t, err, &serr)
		require.Same(t, cause, serr.Err)

		err = translateError(&event.Exception{Err: cause}, "1.0")
		require.ErrorAs(t, err, &serr)
		require.Same(t, cause, serr.Err)
	})
	t.Run("exception without a cause", func(t *testing.T) {
		err := translateError(&event.Exception{Message: "halted"}, "1.0")
		require.Equal(t, &sax.Error{Message: "halted"}, err)
	})
	t.Run("errors from outside the pipeline", func(t *testing.T) {
		plain := errors.New("plain")
		require.Same(t, plain, translateError(plain, "1.0"))
	})
}

func TestFromListener(t *testing.T) {
	require.NoError(t, fromListener(nil))

	perr := &sax.ParseError{Message: "m", SystemID: "doc.xml", Line: 2, Column: 3}
	err := fromListener(perr)
	var eperr *event.ParseError
	require.ErrorAs(t, err, &eperr)
	require.Equal(t, "doc.xml", eperr.ExpandedSystemID)
	require.Equal(t, 2, eperr.Line)
	require.Same(t, perr, eperr.Err)
	require.Same(t, perr, translateError(err, "1.0"), "round trip gives back the listener's error")

	other := errors.New("other")
	var exc *event.Exception
	require.ErrorAs(t, fromListener(other), &exc)
	require.Same(t, other, exc.Err)
}
