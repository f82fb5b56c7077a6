package config

import (
	"errors"
	"strconv"
)

var (
	ErrParameterNotFound  = errors.New("parameter not found")
	ErrNotSupported       = errors.New("parameter value not supported")
	ErrTypeMismatch       = errors.New("parameter type mismatch")
	ErrScannerUnspecified = errors.New("no scanner configured")
)

// ErrorCode classifies named parameter errors.
type ErrorCode int

const (
	NotFound ErrorCode = iota + 1
	NotSupported
	TypeMismatch
)

func (c ErrorCode) String() string {
	switch c {
	case NotFound:
		return "NOT_FOUND_ERR"
	case NotSupported:
		return "NOT_SUPPORTED_ERR"
	case TypeMismatch:
		return "TYPE_MISMATCH_ERR"
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Error is returned by the named parameter accessors. It matches
// ErrParameterNotFound, ErrNotSupported or ErrTypeMismatch via
// errors.Is, depending on Code.
type Error struct {
	Code ErrorCode
	Name string
}

func (e *Error) Error() string {
	switch e.Code {
	case NotFound:
		return "the parameter " + e.Name + " is not recognized"
	case NotSupported:
		return "the parameter " + e.Name + " is recognized but the requested value cannot be set"
	case TypeMismatch:
		return "the value type for the parameter " + e.Name + " is incompatible with the expected value type"
	}
	return e.Code.String() + ": " + e.Name
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrParameterNotFound:
		return e.Code == NotFound
	case ErrNotSupported:
		return e.Code == NotSupported
	case ErrTypeMismatch:
		return e.Code == TypeMismatch
	}
	return false
}

func parameterNotFound(name string) error {
	return &Error{Code: NotFound, Name: name}
}

func parameterNotSupported(name string) error {
	return &Error{Code: NotSupported, Name: name}
}

func typeMismatch(name string) error {
	return &Error{Code: TypeMismatch, Name: name}
}
