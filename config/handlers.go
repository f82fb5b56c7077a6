package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/settings"
)

// Severity of a reported problem.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatalError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityFatalError:
		return "Fatal Error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is what the "error-handler" parameter receives.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Type is the message key
	Type     string
	Domain   string
	Location *event.Position
	Err      *event.ParseError
}

// ErrorHandler is the value type of the "error-handler" parameter.
// HandleError returns false to stop processing after an error.
type ErrorHandler interface {
	HandleError(d *Diagnostic) bool
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(d *Diagnostic) bool

func (f ErrorHandlerFunc) HandleError(d *Diagnostic) bool {
	return f(d)
}

// errorHandlerWrapper presents an ErrorHandler as an
// event.ErrorHandler. Fatal errors are not stopped here: the
// ErrorReporter aborts after notifying.
type errorHandlerWrapper struct {
	handler ErrorHandler
}

var _ event.ErrorHandler = (*errorHandlerWrapper)(nil)

func (w *errorHandlerWrapper) notify(severity Severity, domain, key string, err *event.ParseError) bool {
	if w.handler == nil {
		return true
	}
	return w.handler.HandleError(&Diagnostic{
		Severity: severity,
		Message:  err.Message,
		Type:     key,
		Domain:   domain,
		Location: &event.Position{
			Public:   err.PublicID,
			Literal:  err.LiteralSystemID,
			Expanded: err.ExpandedSystemID,
			Line:     err.Line,
			Column:   err.Column,
		},
		Err: err,
	})
}

func (w *errorHandlerWrapper) Warning(domain, key string, err *event.ParseError) error {
	w.notify(SeverityWarning, domain, key, err)
	return nil
}

func (w *errorHandlerWrapper) Error(domain, key string, err *event.ParseError) error {
	if !w.notify(SeverityError, domain, key, err) {
		return err
	}
	return nil
}

func (w *errorHandlerWrapper) FatalError(domain, key string, err *event.ParseError) error {
	w.notify(SeverityFatalError, domain, key, err)
	return nil
}

// ResourceResolver is the value type of the "resource-resolver"
// parameter. Returning a nil InputSource and a nil error means the
// default resolution applies.
type ResourceResolver interface {
	ResolveResource(resourceType, namespaceURI, publicID, systemID, baseURI string) (*event.InputSource, error)
}

// ResourceResolverFunc adapts a function to ResourceResolver.
type ResourceResolverFunc func(resourceType, namespaceURI, publicID, systemID, baseURI string) (*event.InputSource, error)

func (f ResourceResolverFunc) ResolveResource(resourceType, namespaceURI, publicID, systemID, baseURI string) (*event.InputSource, error) {
	return f(resourceType, namespaceURI, publicID, systemID, baseURI)
}

type resourceResolverWrapper struct {
	resolver ResourceResolver
}

var _ event.EntityResolver = (*resourceResolverWrapper)(nil)

func (w *resourceResolverWrapper) ResolveEntity(id *event.ResourceIdentifier) (*event.InputSource, error) {
	if w.resolver == nil || id == nil {
		return nil, nil
	}
	in, err := w.resolver.ResolveResource(settings.NSDTD, "", id.PublicID, id.LiteralSystemID, id.BaseSystemID)
	if err != nil || in == nil {
		return in, err
	}
	if in.SystemID == "" {
		in.SystemID = id.ExpandedSystemID
	}
	return in, nil
}

// DefaultErrorHandler prints every problem to a writer, one per line.
// Fatal errors are returned after printing.
type DefaultErrorHandler struct {
	out io.Writer
}

var _ event.ErrorHandler = (*DefaultErrorHandler)(nil)

func NewDefaultErrorHandler(out io.Writer) *DefaultErrorHandler {
	return &DefaultErrorHandler{out: out}
}

func (h *DefaultErrorHandler) Warning(_, _ string, err *event.ParseError) error {
	h.print(SeverityWarning, err)
	return nil
}

func (h *DefaultErrorHandler) Error(_, _ string, err *event.ParseError) error {
	h.print(SeverityError, err)
	return nil
}

func (h *DefaultErrorHandler) FatalError(_, _ string, err *event.ParseError) error {
	h.print(SeverityFatalError, err)
	return err
}

func (h *DefaultErrorHandler) print(severity Severity, err *event.ParseError) {
	systemID := err.ExpandedSystemID
	if i := strings.LastIndexByte(systemID, '/'); i != -1 {
		systemID = systemID[i+1:]
	}
	msg := err.Message
	if msg == "" && err.Err != nil {
		msg = err.Err.Error()
	}
	fmt.Fprintf(h.out, "[%s] %s:%d:%d: %s\n", severity, systemID, err.Line, err.Column, msg)
}
