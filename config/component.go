package config

import (
	"context"

	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/settings"
)

// Component is a pluggable unit of the parser pipeline. The ids it
// recognizes are added to the configuration when it is registered,
// and Reset is called with the configuration before every parse.
type Component interface {
	RecognizedFeatures() []string
	RecognizedProperties() []string
	Reset(m settings.Manager) error
}

// Scanner is the component that reads the input and emits the
// structural events.
type Scanner interface {
	Component
	SetDocumentHandler(h event.DocumentHandler)
	Scan(ctx context.Context, in *event.InputSource) error
}
