// Package config implements the parser configuration: the named
// parameter surface and its feature register, the pipeline component
// registry, and the error reporter.
package config

import (
	"context"
	"log/slog"
	"slices"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/internal/tracelog"
	"github.com/lestrrat-go/xni/settings"
	"golang.org/x/text/language"
)

var recognizedFeatures = []string{
	settings.FeatureValidation,
	settings.FeatureNamespaces,
	settings.FeatureSchema,
	settings.FeatureSchemaFullChecking,
	settings.FeatureDynamicValidation,
	settings.FeatureNormalizeData,
	settings.FeatureSchemaElementDefault,
	settings.FeatureGenerateSyntheticAnnotations,
	settings.FeatureValidateAnnotations,
	settings.FeatureHonourAllSchemaLocations,
	settings.FeatureDisallowDoctypeDecl,
	settings.FeatureBalanceSyntaxTrees,
	settings.FeatureWarnOnDuplicateAttdef,
	settings.FeatureParserSettings,
	settings.FeatureNamespaceGrowth,
	settings.FeatureTolerateDuplicates,
}

var recognizedProperties = []string{
	settings.PropertyXMLString,
	settings.PropertyErrorHandler,
	settings.PropertyEntityResolver,
	settings.PropertyErrorReporter,
	settings.PropertySchemaSource,
	settings.PropertySchemaLanguage,
	settings.PropertySchemaDVFactory,
}

// Configuration is a parser configuration. It is not safe for
// concurrent use, and it cannot run two parses at the same time.
type Configuration struct {
	*settings.Settings

	features        Features
	components      []Component
	errorReporter   *ErrorReporter
	errorHandler    *errorHandlerWrapper
	schemaLocation  *string
	locale          language.Tag
	parent          settings.Manager
	documentHandler event.DocumentHandler
	scanner         Scanner
	parsing         bool
}

type Option func(*Configuration)

// WithLocale sets the language used to format messages. The default
// is English.
func WithLocale(tag language.Tag) Option {
	return func(c *Configuration) {
		c.locale = tag
	}
}

// WithParent makes feature and property ids that the configuration
// does not recognize resolve through parent.
func WithParent(parent settings.Manager) Option {
	return func(c *Configuration) {
		c.parent = parent
	}
}

// WithScanner installs the component that produces the events.
func WithScanner(s Scanner) Option {
	return func(c *Configuration) {
		c.scanner = s
	}
}

type checker struct{}

func (checker) CheckFeature(string) error { return nil }

func (checker) CheckProperty(id string) error {
	if id == settings.PropertyXMLString {
		return settings.PropertyNotSupported(id)
	}
	return nil
}

func New(options ...Option) *Configuration {
	c := &Configuration{
		features:     DefaultFeatures,
		errorHandler: &errorHandlerWrapper{},
		locale:       language.English,
	}
	for _, option := range options {
		option(c)
	}

	c.Settings = settings.New(
		settings.WithParent(c.parent),
		settings.WithChecker(checker{}),
	)
	c.AddRecognizedFeatures(recognizedFeatures...)
	for _, id := range recognizedFeatures {
		var state bool
		switch id {
		case settings.FeatureNamespaces, settings.FeatureParserSettings:
			state = true
		}
		_ = c.Settings.SetFeature(id, state)
	}
	c.AddRecognizedProperties(recognizedProperties...)

	c.errorReporter = NewErrorReporter()
	c.errorReporter.PutMessageFormatter(DomainXML, XMLMessages)
	c.errorReporter.PutMessageFormatter(DomainXMLNS, XMLMessages)
	_ = c.SetProperty(settings.PropertyErrorReporter, c.errorReporter)
	c.AddComponent(c.errorReporter)
	c.SetLocale(c.locale)

	if s := c.scanner; s != nil {
		c.SetScanner(s)
	}
	return c
}

// Feature returns the state of a feature. The parser-settings feature
// always reads true.
func (c *Configuration) Feature(id string) (bool, error) {
	if id == settings.FeatureParserSettings {
		return true, nil
	}
	return c.Settings.Feature(id)
}

// Features returns the register behind the boolean named parameters.
func (c *Configuration) Features() Features {
	return c.features
}

// AddComponent registers comp and the ids it recognizes. Registering
// the same component twice has no effect.
func (c *Configuration) AddComponent(comp Component) {
	if slices.Contains(c.components, comp) {
		return
	}
	c.components = append(c.components, comp)
	c.AddRecognizedFeatures(comp.RecognizedFeatures()...)
	c.AddRecognizedProperties(comp.RecognizedProperties()...)
}

// Components lists the registered components in registration order.
func (c *Configuration) Components() []Component {
	return slices.Clone(c.components)
}

// Reset resets every component in registration order. The first
// failure is returned and the remaining components are not reset.
func (c *Configuration) Reset() error {
	for _, comp := range c.components {
		if err := comp.Reset(c); err != nil {
			if pdebug.Enabled {
				pdebug.Printf("configuration: reset %T failed: %s", comp, err)
			}
			return err
		}
	}
	return nil
}

func (c *Configuration) SetLocale(tag language.Tag) {
	c.locale = tag
	c.errorReporter.SetLocale(tag)
}

func (c *Configuration) Locale() language.Tag {
	return c.locale
}

func (c *Configuration) ErrorReporter() *ErrorReporter {
	return c.errorReporter
}

// SetDocumentHandler sets the handler that receives the events of
// the next parse.
func (c *Configuration) SetDocumentHandler(h event.DocumentHandler) {
	c.documentHandler = h
	if c.scanner != nil {
		c.scanner.SetDocumentHandler(h)
	}
}

func (c *Configuration) DocumentHandler() event.DocumentHandler {
	return c.documentHandler
}

// SetErrorHandler installs h as the error handler property. A nil
// handler is ignored.
func (c *Configuration) SetErrorHandler(h event.ErrorHandler) {
	if h == nil {
		return
	}
	_ = c.Settings.SetProperty(settings.PropertyErrorHandler, h)
}

func (c *Configuration) ErrorHandler() event.ErrorHandler {
	v, _ := c.Settings.Property(settings.PropertyErrorHandler)
	h, _ := v.(event.ErrorHandler)
	return h
}

// SetEntityResolver installs r as the entity resolver property. A nil
// resolver uninstalls the current one.
func (c *Configuration) SetEntityResolver(r event.EntityResolver) {
	var v any
	if r != nil {
		v = r
	}
	_ = c.Settings.SetProperty(settings.PropertyEntityResolver, v)
}

func (c *Configuration) EntityResolver() event.EntityResolver {
	v, _ := c.Settings.Property(settings.PropertyEntityResolver)
	r, _ := v.(event.EntityResolver)
	return r
}

// SetScanner installs s as the event producer and registers it as a
// component.
func (c *Configuration) SetScanner(s Scanner) {
	c.scanner = s
	c.AddComponent(s)
	s.SetDocumentHandler(c.documentHandler)
}

func (c *Configuration) Scanner() Scanner {
	return c.scanner
}

// Parse resets the components and scans in, sending the events to the
// document handler.
func (c *Configuration) Parse(ctx context.Context, in *event.InputSource) error {
	if c.parsing {
		return settings.ErrConfigurationInUse
	}
	if c.scanner == nil {
		return ErrScannerUnspecified
	}
	if in == nil {
		in = &event.InputSource{}
	}

	c.parsing = true
	defer func() { c.parsing = false }()

	tracelog.Event(ctx, "configuration: parse", slog.String("system_id", in.SystemID), slog.Int("components", len(c.components)))
	if err := c.Reset(); err != nil {
		tracelog.Error(ctx, err, "configuration: reset failed")
		return err
	}
	c.scanner.SetDocumentHandler(c.documentHandler)
	return c.scanner.Scan(ctx, in)
}
