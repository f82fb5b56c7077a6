package settings

import (
	"errors"
	"strconv"
)

var (
	ErrNotRecognized      = errors.New("not recognized")
	ErrNotSupported       = errors.New("not supported")
	ErrConfigurationInUse = errors.New("configuration in use")
)

// ErrorType classifies configuration errors.
type ErrorType int

const (
	NotRecognized ErrorType = iota + 1
	NotSupported
	InUse
)

func (t ErrorType) String() string {
	switch t {
	case NotRecognized:
		return "not recognized"
	case NotSupported:
		return "not supported"
	case InUse:
		return "cannot be changed while parsing"
	}
	return "ErrorType(" + strconv.Itoa(int(t)) + ")"
}

// What a configuration error refers to.
const (
	KindFeature  = "feature"
	KindProperty = "property"
)

// Error is returned by the feature and property accessors. It
// matches ErrNotRecognized, ErrNotSupported or ErrConfigurationInUse
// via errors.Is, depending on Type.
type Error struct {
	Type ErrorType
	Kind string
	ID   string
}

func (e *Error) Error() string {
	return e.Kind + " '" + e.ID + "' " + e.Type.String()
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotRecognized:
		return e.Type == NotRecognized
	case ErrNotSupported:
		return e.Type == NotSupported
	case ErrConfigurationInUse:
		return e.Type == InUse
	}
	return false
}

func FeatureNotRecognized(id string) error {
	return &Error{Type: NotRecognized, Kind: KindFeature, ID: id}
}

func FeatureNotSupported(id string) error {
	return &Error{Type: NotSupported, Kind: KindFeature, ID: id}
}

func PropertyNotRecognized(id string) error {
	return &Error{Type: NotRecognized, Kind: KindProperty, ID: id}
}

func PropertyNotSupported(id string) error {
	return &Error{Type: NotSupported, Kind: KindProperty, ID: id}
}

func PropertyInUse(id string) error {
	return &Error{Type: InUse, Kind: KindProperty, ID: id}
}
