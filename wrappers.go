package xni

import (
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/sax"
)

// errorHandlerWrapper presents a sax.ErrorHandler as an
// event.ErrorHandler.
type errorHandlerWrapper struct {
	handler sax.ErrorHandler
}

var _ event.ErrorHandler = (*errorHandlerWrapper)(nil)

func toSAXParseError(err *event.ParseError) *sax.ParseError {
	return &sax.ParseError{
		Message:  err.Message,
		PublicID: err.PublicID,
		SystemID: err.ExpandedSystemID,
		Line:     err.Line,
		Column:   err.Column,
		Err:      err.Err,
	}
}

// fromListener converts the error returned by a sax.ErrorHandler back
// to a pipeline error. A *sax.ParseError keeps its position.
func fromListener(err error) error {
	switch err := err.(type) {
	case nil:
		return nil
	case *sax.ParseError:
		return &event.ParseError{
			Message:          err.Message,
			PublicID:         err.PublicID,
			LiteralSystemID:  err.SystemID,
			ExpandedSystemID: err.SystemID,
			Line:             err.Line,
			Column:           err.Column,
			Err:              err,
		}
	}
	return event.Wrap(err)
}

func (w *errorHandlerWrapper) Warning(_, _ string, err *event.ParseError) error {
	if w.handler == nil {
		return nil
	}
	return fromListener(w.handler.Warning(toSAXParseError(err)))
}

func (w *errorHandlerWrapper) Error(_, _ string, err *event.ParseError) error {
	if w.handler == nil {
		return nil
	}
	return fromListener(w.handler.Error(toSAXParseError(err)))
}

func (w *errorHandlerWrapper) FatalError(_, _ string, err *event.ParseError) error {
	if w.handler == nil {
		return nil
	}
	return fromListener(w.handler.FatalError(toSAXParseError(err)))
}

func toInputSource(in *sax.InputSource, id *event.ResourceIdentifier) *event.InputSource {
	return &event.InputSource{
		PublicID:     in.PublicID,
		SystemID:     in.SystemID,
		BaseSystemID: id.BaseSystemID,
		ByteStream:   in.ByteStream,
		Encoding:     in.Encoding,
	}
}

// entityResolverWrapper presents a sax.EntityResolver as an
// event.EntityResolver.
type entityResolverWrapper struct {
	resolver sax.EntityResolver
}

var _ event.EntityResolver = (*entityResolverWrapper)(nil)

func (w *entityResolverWrapper) ResolveEntity(id *event.ResourceIdentifier) (*event.InputSource, error) {
	if w.resolver == nil || id == nil {
		return nil, nil
	}
	if id.PublicID == "" && id.ExpandedSystemID == "" {
		return nil, nil
	}

	in, err := w.resolver.ResolveEntity(id.PublicID, id.ExpandedSystemID)
	if err != nil {
		return nil, fromListener(err)
	}
	if in == nil {
		return nil, nil
	}
	return toInputSource(in, id), nil
}

// entityResolver2Wrapper presents a sax.EntityResolver2 as an
// event.EntityResolver. The resolver sees the literal system id and
// the base URI.
type entityResolver2Wrapper struct {
	resolver sax.EntityResolver2
}

var _ event.EntityResolver = (*entityResolver2Wrapper)(nil)

func (w *entityResolver2Wrapper) ResolveEntity(id *event.ResourceIdentifier) (*event.InputSource, error) {
	if w.resolver == nil || id == nil {
		return nil, nil
	}
	if id.PublicID == "" && id.LiteralSystemID == "" {
		return nil, nil
	}

	in, err := w.resolver.ResolveEntityWithBase(id.Name, id.PublicID, id.BaseSystemID, id.LiteralSystemID)
	if err != nil {
		return nil, fromListener(err)
	}
	if in == nil {
		return nil, nil
	}
	return toInputSource(in, id), nil
}

var _ event.ExternalSubsetResolver = (*entityResolver2Wrapper)(nil)

func (w *entityResolver2Wrapper) ExternalSubset(rootElement, baseSystemID string) (*event.InputSource, error) {
	if w.resolver == nil {
		return nil, nil
	}
	in, err := w.resolver.GetExternalSubset(rootElement, baseSystemID)
	if err != nil {
		return nil, fromListener(err)
	}
	if in == nil {
		return nil, nil
	}
	return toInputSource(in, &event.ResourceIdentifier{BaseSystemID: baseSystemID}), nil
}
