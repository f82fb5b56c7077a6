package config

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/settings"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Error domains.
const (
	DomainXML   = "http://www.w3.org/TR/1998/REC-xml-19980210"
	DomainXMLNS = "http://www.w3.org/TR/1999/REC-xml-names-19990114"
)

// MessageFormatter turns a message key and its arguments into text.
type MessageFormatter interface {
	FormatMessage(tag language.Tag, key string, args []any) (string, error)
}

// CatalogFormatter formats messages from a fixed key to format string
// table, using the number and plural rules of the requested language.
type CatalogFormatter map[string]string

func (c CatalogFormatter) FormatMessage(tag language.Tag, key string, args []any) (string, error) {
	format, ok := c[key]
	if !ok {
		return "", fmt.Errorf("no message for key %q", key)
	}
	return message.NewPrinter(tag).Sprintf(format, args...), nil
}

// XMLMessages are the messages reported in DomainXML and DomainXMLNS.
var XMLMessages = CatalogFormatter{
	"MarkupNotRecognizedInContent": "The content of elements must consist of well-formed character data or markup: %v.",
	"ETagRequired":                 "The element type %q must be terminated by the matching end-tag.",
	"ElementUnterminated":          "Element type %q must be followed by either attribute specifications, \">\" or \"/>\".",
	"PrematureEOF":                 "Premature end of file after %d bytes.",
	"InvalidCharInContent":         "An invalid character was found in the element content of the document: %v.",
	"EncodingNotSupported":         "The encoding %q is not supported.",
	"EncodingByteOrderUnsupported": "Given byte order for encoding %q is not supported.",
	"InvalidByte":                  "Invalid byte %d of %d-byte UTF-8 sequence.",
	"ElementPrefixUnbound":         "The prefix %q for element %q is not bound.",
	"AttributePrefixUnbound":       "The prefix %q for attribute %q associated with an element type %q is not bound.",
	"EntityNotDeclared":            "The entity %q was referenced, but not declared.",
	"DoctypeNotAllowed":            "DOCTYPE is disallowed when the feature %q set to true.",
	"IOError":                      "Failed to read %q: %v.",
}

// ErrorReporter is the pipeline component that turns problems found by
// other components into calls on the configured event.ErrorHandler.
type ErrorReporter struct {
	handler            event.ErrorHandler
	continueAfterFatal bool
	locale             language.Tag
	formatters         map[string]MessageFormatter
}

var _ Component = (*ErrorReporter)(nil)

func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{
		locale:     language.English,
		formatters: make(map[string]MessageFormatter),
	}
}

func (r *ErrorReporter) RecognizedFeatures() []string {
	return []string{settings.FeatureContinueAfterFatalError}
}

func (r *ErrorReporter) RecognizedProperties() []string {
	return []string{settings.PropertyErrorHandler}
}

// Reset picks up the error handler and continue-after-fatal-error
// from m. Both are optional.
func (r *ErrorReporter) Reset(m settings.Manager) error {
	r.continueAfterFatal = false
	if v, err := m.Feature(settings.FeatureContinueAfterFatalError); err == nil {
		r.continueAfterFatal = v
	}

	r.handler = nil
	if v, err := m.Property(settings.PropertyErrorHandler); err == nil {
		r.handler, _ = v.(event.ErrorHandler)
	}
	return nil
}

func (r *ErrorReporter) SetLocale(tag language.Tag) {
	r.locale = tag
}

func (r *ErrorReporter) Locale() language.Tag {
	return r.locale
}

// PutMessageFormatter registers f for the messages of domain.
func (r *ErrorReporter) PutMessageFormatter(domain string, f MessageFormatter) {
	r.formatters[domain] = f
}

func (r *ErrorReporter) MessageFormatter(domain string) MessageFormatter {
	return r.formatters[domain]
}

// SetErrorHandler replaces the handler picked up on Reset.
func (r *ErrorReporter) SetErrorHandler(h event.ErrorHandler) {
	r.handler = h
}

func (r *ErrorReporter) ErrorHandler() event.ErrorHandler {
	return r.handler
}

func (r *ErrorReporter) formatMessage(domain, key string, args []any) string {
	if f := r.formatters[domain]; f != nil {
		if msg, err := f.FormatMessage(r.locale, key, args); err == nil {
			return msg
		}
	}

	var b strings.Builder
	b.WriteString(key)
	for i, arg := range args {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

// ReportError reports a problem found at loc. The returned error is
// non-nil when the parse must stop: when the handler says so, or on a
// fatal error unless continue-after-fatal-error is on. Without a
// handler, warnings and errors are ignored.
func (r *ErrorReporter) ReportError(loc event.Locator, domain, key string, args []any, severity Severity) error {
	return r.ReportErrorCause(loc, domain, key, args, severity, nil)
}

// ReportErrorCause is ReportError with an underlying cause attached to
// the event.ParseError.
func (r *ErrorReporter) ReportErrorCause(loc event.Locator, domain, key string, args []any, severity Severity, cause error) error {
	perr := event.NewParseError(loc, r.formatMessage(domain, key, args), cause)
	if pdebug.Enabled {
		pdebug.Printf("error reporter: %s %s", severity, perr)
	}

	var err error
	if h := r.handler; h != nil {
		switch severity {
		case SeverityWarning:
			err = h.Warning(domain, key, perr)
		case SeverityError:
			err = h.Error(domain, key, perr)
		case SeverityFatalError:
			err = h.FatalError(domain, key, perr)
		}
	}
	if err != nil {
		return err
	}

	if severity == SeverityFatalError && !r.continueAfterFatal {
		return perr
	}
	return nil
}
