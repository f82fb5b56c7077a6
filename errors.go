package xni

import (
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/sax"
)

// translateError converts a pipeline failure into the error returned
// by Parse. Position-bearing failures without a cause (or caused by
// undecodable input) become a *sax.ParseError. Causes that already are
// sax errors are returned unchanged, as are I/O failures. Anything
// else is wrapped in a *sax.Error. Errors that did not come out of the
// pipeline are returned as is. A sax error that a listener wrapped is
// not wrapped again.
func translateError(err error, version string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *event.ParseError:
		cause := e.Err
		if cause == nil || event.IsCharConversion(cause) {
			msg := e.Message
			if msg == "" && cause != nil {
				msg = cause.Error()
			}
			return &sax.ParseError{
				Message:    msg,
				PublicID:   e.PublicID,
				SystemID:   e.ExpandedSystemID,
				Line:       e.Line,
				Column:     e.Column,
				XMLVersion: version,
				Err:        cause,
			}
		}
		return translateCause(cause)
	case *event.Exception:
		if e.Err == nil {
			return &sax.Error{Message: e.Message}
		}
		return translateCause(e.Err)
	}
	return err
}

func translateCause(cause error) error {
	if sax.IsSAXError(cause) || event.IsIOError(cause) {
		return cause
	}
	return &sax.Error{Err: cause}
}
