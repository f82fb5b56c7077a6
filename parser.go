// Package xni adapts the structural events of the parser pipeline to
// the listener interfaces of package sax.
//
// A Parser owns a config.Configuration. The configuration's scanner
// produces event.DocumentHandler calls, which the Parser translates
// into ContentHandler, DocumentHandler and LexicalHandler calls:
//
//	p := xni.New(config.WithScanner(scanner.New()))
//	p.SetContentHandler(myHandler)
//	if err := p.ParseURI(ctx, "doc.xml"); err != nil {
//	    ...
//	}
package xni

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/config"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/internal/tracelog"
	"github.com/lestrrat-go/xni/sax"
	"github.com/lestrrat-go/xni/settings"
	"golang.org/x/text/language"
)

const Version = "v0.1.0"

// Parser is the event adapter. It implements event.DocumentHandler and
// is installed as the document handler of its configuration.
type Parser struct {
	config *config.Configuration

	contentHandler  sax.ContentHandler
	documentHandler sax.DocumentHandler
	lexicalHandler  sax.LexicalHandler
	dtdHandler      sax.DTDHandler

	namespaces                      bool
	lexicalHandlerParameterEntities bool
	resolveDTDURIs                  bool
	xmlnsURIs                       bool
	useEntityResolver2              bool

	// valid while parsing
	nsctx      event.NamespaceContext
	attributes attributesProxy
	version    string
	standalone bool

	state State
}

var _ event.DocumentHandler = (*Parser)(nil)
var _ event.DTDHandler = (*Parser)(nil)

// New creates a Parser with a new configuration built from options.
func New(options ...config.Option) *Parser {
	return NewWithConfiguration(config.New(options...))
}

// NewWithConfiguration creates a Parser on top of cfg, and installs
// the Parser as the document handler of cfg.
func NewWithConfiguration(cfg *config.Configuration) *Parser {
	p := &Parser{
		config:             cfg,
		namespaces:         true,
		resolveDTDURIs:     true,
		xmlnsURIs:          false,
		useEntityResolver2: true,
		version:            "1.0",
	}
	cfg.AddRecognizedFeatures(settings.FeatureNamespacePrefixes, settings.FeatureStringInterning)
	cfg.AddRecognizedProperties(settings.PropertyLexicalHandler, settings.PropertyDOMNode)
	_ = cfg.SetFeature(settings.FeatureNamespacePrefixes, false)
	_ = cfg.SetFeature(settings.FeatureStringInterning, true)
	cfg.SetDocumentHandler(p)
	return p
}

// Configuration returns the underlying configuration.
func (p *Parser) Configuration() *config.Configuration {
	return p.config
}

// State returns where the Parser is in its lifecycle.
func (p *Parser) State() State {
	return p.state
}

func (p *Parser) SetContentHandler(h sax.ContentHandler) {
	p.contentHandler = h
}

func (p *Parser) ContentHandler() sax.ContentHandler {
	return p.contentHandler
}

// SetDocumentHandler sets the namespace unaware listener. It receives
// events in addition to the ContentHandler.
func (p *Parser) SetDocumentHandler(h sax.DocumentHandler) {
	p.documentHandler = h
}

func (p *Parser) DocumentHandler() sax.DocumentHandler {
	return p.documentHandler
}

// SetLexicalHandler sets the lexical listener. It cannot be changed
// while parsing.
func (p *Parser) SetLexicalHandler(h sax.LexicalHandler) error {
	if p.state == StateParsing {
		return settings.PropertyInUse(settings.PropertyLexicalHandler)
	}
	p.lexicalHandler = h
	return nil
}

func (p *Parser) LexicalHandler() sax.LexicalHandler {
	return p.lexicalHandler
}

func (p *Parser) SetDTDHandler(h sax.DTDHandler) {
	p.dtdHandler = h
}

func (p *Parser) DTDHandler() sax.DTDHandler {
	return p.dtdHandler
}

// SetErrorHandler installs h as the error handler of the
// configuration.
func (p *Parser) SetErrorHandler(h sax.ErrorHandler) {
	if w, ok := p.config.ErrorHandler().(*errorHandlerWrapper); ok {
		w.handler = h
		return
	}
	p.config.SetErrorHandler(&errorHandlerWrapper{handler: h})
}

// ErrorHandler returns the handler installed with SetErrorHandler.
func (p *Parser) ErrorHandler() sax.ErrorHandler {
	if w, ok := p.config.ErrorHandler().(*errorHandlerWrapper); ok {
		return w.handler
	}
	return nil
}

// SetEntityResolver installs r as the entity resolver of the
// configuration. When use-entity-resolver2 is on and r implements
// sax.EntityResolver2, the richer interface is used.
func (p *Parser) SetEntityResolver(r sax.EntityResolver) {
	current := p.config.EntityResolver()
	if r2, ok := r.(sax.EntityResolver2); ok && p.useEntityResolver2 {
		if w, ok := current.(*entityResolver2Wrapper); ok {
			w.resolver = r2
			return
		}
		p.config.SetEntityResolver(&entityResolver2Wrapper{resolver: r2})
		return
	}

	if w, ok := current.(*entityResolverWrapper); ok {
		w.resolver = r
		return
	}
	p.config.SetEntityResolver(&entityResolverWrapper{resolver: r})
}

// EntityResolver returns the resolver installed with SetEntityResolver.
func (p *Parser) EntityResolver() sax.EntityResolver {
	switch w := p.config.EntityResolver().(type) {
	case *entityResolverWrapper:
		return w.resolver
	case *entityResolver2Wrapper:
		if w.resolver != nil {
			return w.resolver
		}
	}
	return nil
}

func (p *Parser) SetLocale(tag language.Tag) {
	p.config.SetLocale(tag)
}

func (p *Parser) Locale() language.Tag {
	return p.config.Locale()
}

// Parse parses the document described by in.
func (p *Parser) Parse(ctx context.Context, in *sax.InputSource) error {
	src := &event.InputSource{}
	if in != nil {
		src.PublicID = in.PublicID
		src.SystemID = in.SystemID
		src.ByteStream = in.ByteStream
		src.Encoding = in.Encoding
	}
	return p.parse(ctx, src)
}

// ParseURI parses the document identified by systemID.
func (p *Parser) ParseURI(ctx context.Context, systemID string) error {
	return p.parse(ctx, &event.InputSource{SystemID: systemID})
}

func (p *Parser) parse(ctx context.Context, in *event.InputSource) error {
	if p.state == StateParsing {
		return settings.ErrConfigurationInUse
	}

	tlog := tracelog.FromContext(ctx)
	tlog.Debug("parse start", slog.String("system_id", in.SystemID))

	p.state = StateParsing
	if err := p.reset(); err != nil {
		p.state = StateFaulted
		return translateError(err, p.version)
	}

	err := p.config.Parse(ctx, in)
	p.nsctx = nil
	p.attributes.attrs = nil
	if err != nil {
		p.state = StateFaulted
		tlog.Debug("parse failed", slog.String("error", err.Error()))
		return translateError(err, p.version)
	}
	p.state = StateIdle
	tlog.Debug("parse done")
	return nil
}

func (p *Parser) reset() error {
	p.version = "1.0"
	p.standalone = false
	namespaces, err := p.config.Feature(settings.FeatureNamespaces)
	if err != nil {
		return err
	}
	p.namespaces = namespaces
	if pdebug.Enabled {
		pdebug.Printf("xni: reset (namespaces = %t)", p.namespaces)
	}
	return nil
}
