package sax

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError is a parse failure that carries the location where it
// occurred.
type ParseError struct {
	Message    string
	PublicID   string
	SystemID   string
	Line       int
	Column     int
	XMLVersion string
	Err        error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.SystemID != "" {
		b.WriteString(e.SystemID)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Column)
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("parse error")
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Error is a generic failure raised through the listener interfaces.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "sax error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsSAXError reports whether err is, or wraps, a *ParseError or an
// *Error.
func IsSAXError(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return true
	}
	var se *Error
	return errors.As(err, &se)
}
