package event

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ParseError is a location-bearing failure produced by a pipeline
// component. Err, when non-nil, is the underlying cause.
type ParseError struct {
	Message          string
	PublicID         string
	LiteralSystemID  string
	ExpandedSystemID string
	Line             int
	Column           int
	Err              error
}

// NewParseError creates a ParseError positioned at loc.
func NewParseError(loc Locator, msg string, err error) *ParseError {
	e := &ParseError{
		Message: msg,
		Err:     err,
	}
	if loc != nil {
		e.PublicID = loc.PublicID()
		e.LiteralSystemID = loc.LiteralSystemID()
		e.ExpandedSystemID = loc.ExpandedSystemID()
		e.Line = loc.LineNumber()
		e.Column = loc.ColumnNumber()
	}
	return e
}

func (e *ParseError) Error() string {
	var b strings.Builder
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	b.WriteString(msg)
	if e.ExpandedSystemID != "" {
		fmt.Fprintf(&b, " in %s", e.ExpandedSystemID)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Exception is a generic pipeline failure without location
// information.
type Exception struct {
	Message string
	Err     error
}

// Wrap returns err as an *Exception, unless it already is a
// *ParseError or an *Exception.
func Wrap(err error) error {
	switch err.(type) {
	case nil:
		return nil
	case *Exception, *ParseError:
		return err
	}
	return &Exception{Err: err}
}

func (e *Exception) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "pipeline failure"
}

func (e *Exception) Unwrap() error {
	return e.Err
}

// CharConversionError reports input that could not be decoded.
type CharConversionError struct {
	Encoding string
	Err      error
}

func (e *CharConversionError) Error() string {
	if e.Encoding == "" {
		return "invalid byte sequence: " + e.Err.Error()
	}
	return "invalid byte sequence for encoding " + e.Encoding + ": " + e.Err.Error()
}

func (e *CharConversionError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to read from the input.
type IOError struct {
	SystemID string
	Err      error
}

func (e *IOError) Error() string {
	if e.SystemID == "" {
		return "read failed: " + e.Err.Error()
	}
	return "read " + e.SystemID + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err is (or wraps) an input failure.
func IsIOError(err error) bool {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return true
	}
	var pe *fs.PathError
	return errors.As(err, &pe)
}

// IsCharConversion reports whether err is (or wraps) a decoding failure.
func IsCharConversion(err error) bool {
	var cce *CharConversionError
	return errors.As(err, &cce)
}
