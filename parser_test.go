package xni_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lestrrat-go/xni"
	"github.com/lestrrat-go/xni/config"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/internal/stack/nsstack"
	"github.com/lestrrat-go/xni/sax"
	"github.com/lestrrat-go/xni/settings"
	"github.com/stretchr/testify/require"
)

// replayScanner is a config.Scanner that replays recorded events.
type replayScanner struct {
	events  []event.Event
	handler event.DocumentHandler
	onScan  func() error
}

func (s *replayScanner) RecognizedFeatures() []string   { return nil }
func (s *replayScanner) RecognizedProperties() []string { return nil }
func (s *replayScanner) Reset(settings.Manager) error   { return nil }

func (s *replayScanner) SetDocumentHandler(h event.DocumentHandler) {
	s.handler = h
}

func (s *replayScanner) Scan(_ context.Context, _ *event.InputSource) error {
	if s.onScan != nil {
		if err := s.onScan(); err != nil {
			return err
		}
	}
	return event.Replay(s.handler, s.events...)
}

func qname(prefix, local, uri string) event.QName {
	raw := local
	if prefix != "" {
		raw = prefix + ":" + local
	}
	return event.QName{Prefix: prefix, LocalPart: local, RawName: raw, URI: uri}
}

func document(body ...event.Event) []event.Event {
	events := []event.Event{{
		Kind:             event.KindStartDocument,
		Locator:          &event.Position{Expanded: "file:///test.xml", Line: 1, Column: 1, Version: "1.0"},
		NamespaceContext: nsstack.New(),
	}}
	events = append(events, body...)
	return append(events, event.Event{Kind: event.KindEndDocument})
}

func newParser(t *testing.T, events []event.Event) (*xni.Parser, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p := xni.New(config.WithScanner(&replayScanner{events: events}))
	emitter := sax.NewEventEmitter(&out)
	p.SetContentHandler(emitter)
	require.NoError(t, p.SetLexicalHandler(emitter))
	p.SetErrorHandler(emitter)
	return p, &out
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestPrefixMappingOrder(t *testing.T) {
	root := qname("p1", "root", "urn:one")
	p, out := newParser(t, document(
		event.Event{
			Kind:    event.KindStartElement,
			Element: root,
			Namespaces: []event.NamespaceBinding{
				{Prefix: "p1", URI: "urn:one"},
				{Prefix: "p2", URI: "urn:two"},
			},
		},
		event.Event{Kind: event.KindEndElement, Element: root},
	))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.StartPrefixMapping(p1, urn:one)",
		"SAX.StartPrefixMapping(p2, urn:two)",
		"SAX.StartElementNS(urn:one, root, p1:root, 0)",
		"SAX.EndElementNS(urn:one, root, p1:root)",
		"SAX.EndPrefixMapping(p1)",
		"SAX.EndPrefixMapping(p2)",
		"SAX.EndDocument()",
	), out.String())
	require.Equal(t, xni.StateIdle, p.State())
}

func TestNestedScopes(t *testing.T) {
	outer := qname("", "outer", "urn:default")
	inner := qname("", "inner", "")
	p, out := newParser(t, document(
		event.Event{Kind: event.KindStartElement, Element: outer, Namespaces: []event.NamespaceBinding{{URI: "urn:default"}}},
		event.Event{Kind: event.KindEmptyElement, Element: inner, Namespaces: []event.NamespaceBinding{{URI: ""}}},
		event.Event{Kind: event.KindEndElement, Element: outer},
	))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.StartPrefixMapping(NULL, urn:default)",
		"SAX.StartElementNS(urn:default, outer, outer, 0)",
		"SAX.StartPrefixMapping(NULL, NULL)",
		"SAX.StartElementNS(NULL, inner, inner, 0)",
		"SAX.EndElementNS(NULL, inner, inner)",
		"SAX.EndPrefixMapping(NULL)",
		"SAX.EndElementNS(urn:default, outer, outer)",
		"SAX.EndPrefixMapping(NULL)",
		"SAX.EndDocument()",
	), out.String())
}

func TestNamespacesOff(t *testing.T) {
	root := qname("p", "root", "urn:p")
	p, out := newParser(t, document(
		event.Event{Kind: event.KindEmptyElement, Element: root, Namespaces: []event.NamespaceBinding{{Prefix: "p", URI: "urn:p"}}},
	))
	require.NoError(t, p.SetFeature(settings.FeatureNamespaces, false))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.StartElementNS(urn:p, NULL, p:root, 0)",
		"SAX.EndElementNS(urn:p, NULL, p:root)",
		"SAX.EndDocument()",
	), out.String())
}

func TestTextEvents(t *testing.T) {
	root := qname("", "root", "")
	p, out := newParser(t, document(
		event.Event{Kind: event.KindStartElement, Element: root},
		event.Event{Kind: event.KindCharacters, Text: []byte{}},
		event.Event{Kind: event.KindCharacters, Text: []byte("hello")},
		event.Event{Kind: event.KindIgnorableWhitespace, Text: nil},
		event.Event{Kind: event.KindIgnorableWhitespace, Text: []byte("  ")},
		event.Event{Kind: event.KindStartCDATA},
		event.Event{Kind: event.KindCharacters, Text: []byte("<raw>")},
		event.Event{Kind: event.KindEndCDATA},
		event.Event{Kind: event.KindComment, Text: []byte(" note ")},
		event.Event{Kind: event.KindProcessingInstruction, Name: "pi", Text: []byte("data")},
		event.Event{Kind: event.KindEndElement, Element: root},
	))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.StartElementNS(NULL, root, root, 0)",
		"SAX.Characters(hello, 5)",
		"SAX.IgnorableWhitespace(  , 2)",
		"SAX.StartCDATA()",
		"SAX.Characters(<raw>, 5)",
		"SAX.EndCDATA()",
		"SAX.Comment( note )",
		"SAX.ProcessingInstruction(pi, data)",
		"SAX.EndElementNS(NULL, root, root)",
		"SAX.EndDocument()",
	), out.String())
}

func TestLexicalEventsNeedLexicalHandler(t *testing.T) {
	var out bytes.Buffer
	p := xni.New(config.WithScanner(&replayScanner{events: document(
		event.Event{Kind: event.KindDoctype, Name: "root", SystemID: "root.dtd"},
		event.Event{Kind: event.KindComment, Text: []byte("dropped")},
		event.Event{Kind: event.KindStartCDATA},
		event.Event{Kind: event.KindEndCDATA},
		event.Event{Kind: event.KindStartEntity, Name: "ent"},
		event.Event{Kind: event.KindEndEntity, Name: "ent"},
	)}))
	p.SetContentHandler(sax.NewEventEmitter(&out))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.EndDocument()",
	), out.String())
}

func TestEntities(t *testing.T) {
	skipped := event.Augmentations{event.AugEntitySkipped: true}
	p, out := newParser(t, document(
		event.Event{Kind: event.KindDoctype, Name: "root", PublicID: "-//TEST//EN", SystemID: "root.dtd"},
		event.Event{Kind: event.KindStartEntity, Name: "nbsp", Augs: skipped},
		event.Event{Kind: event.KindEndEntity, Name: "nbsp", Augs: skipped},
		event.Event{Kind: event.KindStartEntity, Name: "copy"},
		event.Event{Kind: event.KindCharacters, Text: []byte("(c)")},
		event.Event{Kind: event.KindEndEntity, Name: "copy"},
	))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, lines(
		"SAX.SetDocumentLocator()",
		"SAX.StartDocument()",
		"SAX.StartDTD(root, -//TEST//EN, root.dtd)",
		"SAX.SkippedEntity(nbsp)",
		"SAX.StartEntity(copy)",
		"SAX.Characters((c), 3)",
		"SAX.EndEntity(copy)",
		"SAX.EndDocument()",
	), out.String())
}

func TestDetachDuringSetDocumentLocator(t *testing.T) {
	var calls []string
	p := xni.New(config.WithScanner(&replayScanner{events: document()}))

	h := sax.New()
	h.SetDocumentLocatorHandler = func(loc sax.Locator) error {
		calls = append(calls, "locator "+loc.SystemID())
		p.SetContentHandler(nil)
		return nil
	}
	h.StartDocumentHandler = func() error {
		calls = append(calls, "start")
		return nil
	}
	h.EndDocumentHandler = func() error {
		calls = append(calls, "end")
		return nil
	}
	p.SetContentHandler(h)

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, []string{"locator file:///test.xml"}, calls)
}

type minimalHandler struct {
	calls []string
}

func (h *minimalHandler) SetDocumentLocator(sax.Locator) error { return nil }
func (h *minimalHandler) StartDocument() error {
	h.calls = append(h.calls, "start-document")
	return nil
}
func (h *minimalHandler) EndDocument() error {
	h.calls = append(h.calls, "end-document")
	return nil
}
func (h *minimalHandler) StartElement(name string, attrs sax.Attributes) error {
	h.calls = append(h.calls, "start "+name+" "+attrs.Value(0))
	return nil
}
func (h *minimalHandler) EndElement(name string) error {
	h.calls = append(h.calls, "end "+name)
	return nil
}
func (h *minimalHandler) Characters(ch []byte) error {
	h.calls = append(h.calls, "text "+string(ch))
	return nil
}
func (h *minimalHandler) IgnorableWhitespace([]byte) error { return nil }
func (h *minimalHandler) ProcessingInstruction(target, data string) error {
	h.calls = append(h.calls, "pi "+target+" "+data)
	return nil
}

func TestDocumentHandler(t *testing.T) {
	elem := qname("x", "e", "urn:x")
	attrs := event.NewAttributes(event.Attribute{Name: qname("", "a", ""), Type: "CDATA", Value: "1", Specified: true})
	p := xni.New(config.WithScanner(&replayScanner{events: document(
		event.Event{Kind: event.KindStartElement, Element: elem, Attributes: attrs},
		event.Event{Kind: event.KindCharacters, Text: []byte("t")},
		event.Event{Kind: event.KindProcessingInstruction, Name: "go", Text: []byte("fmt")},
		event.Event{Kind: event.KindEndElement, Element: elem},
	)}))
	h := &minimalHandler{}
	p.SetDocumentHandler(h)
	require.Same(t, h, p.DocumentHandler())

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.Equal(t, []string{"start-document", "start x:e 1", "text t", "pi go fmt", "end x:e", "end-document"}, h.calls)
}

func TestAttributes(t *testing.T) {
	declared := event.Augmentations{event.AugAttributeDeclared: true}
	attrs := event.NewAttributes(
		event.Attribute{Name: qname("", "id", ""), Type: "ID", Value: "a1", Specified: true, Augs: declared},
		event.Attribute{Name: qname("x", "lang", "urn:x"), Type: "CDATA", Value: "en"},
	)
	p := xni.New(config.WithScanner(&replayScanner{events: document(
		event.Event{Kind: event.KindEmptyElement, Element: qname("", "e", ""), Attributes: attrs},
	)}))

	var checked bool
	h := sax.New()
	h.StartElementHandler = func(_, _, _ string, a sax.Attributes) error {
		checked = true
		require.Equal(t, 2, a.Len())
		require.Equal(t, "id", a.QName(0))
		require.Equal(t, "ID", a.Type(0))
		require.True(t, a.IsDeclared(0))
		require.True(t, a.IsSpecified(0))

		i := a.IndexNS("urn:x", "lang")
		require.Equal(t, 1, i)
		require.Equal(t, "x:lang", a.QName(i))
		require.Equal(t, "lang", a.LocalName(i))
		require.Equal(t, "urn:x", a.URI(i))
		require.Equal(t, "en", a.Value(i))
		require.False(t, a.IsDeclared(i))
		require.False(t, a.IsSpecified(i))

		require.Equal(t, 0, a.Index("id"))
		require.Equal(t, -1, a.Index("nope"))
		require.Equal(t, "", a.Value(5))
		require.False(t, a.IsDeclared(-1))
		return nil
	}
	p.SetContentHandler(h)

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.True(t, checked)
}

func TestXMLDecl(t *testing.T) {
	p, _ := newParser(t, document(
		event.Event{Kind: event.KindXMLDecl, Version: "1.1", Encoding: "UTF-8", Standalone: "yes"},
	))
	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))

	v, err := p.Property(settings.PropertyDocumentXMLVersion)
	require.NoError(t, err)
	require.Equal(t, "1.1", v)

	standalone, err := p.Feature(settings.FeatureIsStandalone)
	require.NoError(t, err)
	require.True(t, standalone)
}

func TestListenerErrors(t *testing.T) {
	t.Run("sax errors are returned unchanged", func(t *testing.T) {
		stop := &sax.Error{Message: "stop"}
		p := xni.New(config.WithScanner(&replayScanner{events: document(
			event.Event{Kind: event.KindEmptyElement, Element: qname("", "e", "")},
		)}))
		h := sax.New()
		h.StartElementHandler = func(string, string, string, sax.Attributes) error {
			return stop
		}
		p.SetContentHandler(h)

		err := p.ParseURI(context.Background(), "test.xml")
		require.Same(t, stop, err)
		require.Equal(t, xni.StateFaulted, p.State())
	})
	t.Run("other errors are wrapped", func(t *testing.T) {
		stop := errors.New("stop")
		p := xni.New(config.WithScanner(&replayScanner{events: document()}))
		h := sax.New()
		h.EndDocumentHandler = func() error {
			return stop
		}
		p.SetContentHandler(h)

		err := p.ParseURI(context.Background(), "test.xml")
		require.ErrorIs(t, err, stop)
		var saxErr *sax.Error
		require.ErrorAs(t, err, &saxErr)
	})
}

func TestErrorHandler(t *testing.T) {
	loc := &event.Position{Expanded: "file:///test.xml", Line: 4, Column: 2}

	s := &replayScanner{events: document()}
	p := xni.New(config.WithScanner(s))

	t.Run("warning", func(t *testing.T) {
		s.onScan = func() error {
			return p.Configuration().ErrorReporter().ReportError(loc, config.DomainXML, "EntityNotDeclared", []any{"foo"}, config.SeverityWarning)
		}
		var out bytes.Buffer
		p.SetErrorHandler(sax.NewEventEmitter(&out))

		require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
		require.Equal(t, "SAX.Warning(file:///test.xml:4:2: The entity \"foo\" was referenced, but not declared.)\n", out.String())
	})
	t.Run("fatal error returned by the handler", func(t *testing.T) {
		s.onScan = func() error {
			return p.Configuration().ErrorReporter().ReportError(loc, config.DomainXML, "PrematureEOF", []any{10}, config.SeverityFatalError)
		}
		var out bytes.Buffer
		p.SetErrorHandler(sax.NewEventEmitter(&out))

		err := p.ParseURI(context.Background(), "test.xml")
		var perr *sax.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "Premature end of file after 10 bytes.", perr.Message)
		require.Equal(t, 4, perr.Line)
		require.Equal(t, "SAX.FatalError(file:///test.xml:4:2: Premature end of file after 10 bytes.)\n", out.String())
		require.Equal(t, xni.StateFaulted, p.State())
	})
	t.Run("fatal error without a handler", func(t *testing.T) {
		s.onScan = func() error {
			return p.Configuration().ErrorReporter().ReportError(loc, config.DomainXML, "PrematureEOF", []any{10}, config.SeverityFatalError)
		}
		p.SetErrorHandler(nil)
		require.Nil(t, p.ErrorHandler())

		err := p.ParseURI(context.Background(), "test.xml")
		var perr *sax.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "file:///test.xml", perr.SystemID)
		require.Equal(t, "1.0", perr.XMLVersion)
		require.NoError(t, perr.Err)
	})
}

func TestLexicalHandlerLockedWhileParsing(t *testing.T) {
	var p *xni.Parser
	var lockErr, propErr, reentrant error
	s := &replayScanner{events: document()}
	s.onScan = func() error {
		lockErr = p.SetLexicalHandler(sax.New())
		propErr = p.SetProperty(settings.PropertyLexicalHandler, sax.New())
		reentrant = p.ParseURI(context.Background(), "again.xml")
		return nil
	}
	p = xni.New(config.WithScanner(s))

	require.NoError(t, p.ParseURI(context.Background(), "test.xml"))
	require.ErrorIs(t, lockErr, settings.ErrConfigurationInUse)
	require.ErrorIs(t, propErr, settings.ErrConfigurationInUse)
	require.ErrorIs(t, reentrant, settings.ErrConfigurationInUse)

	require.NoError(t, p.SetProperty(settings.PropertyLexicalHandler, sax.New()), "allowed again after the parse")
}
