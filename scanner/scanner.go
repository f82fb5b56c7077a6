// Package scanner implements the pipeline component that reads an XML
// document and emits its structural events. Tokenizing is delegated to
// encoding/xml; the scanner adds namespace binding, positions, and the
// event protocol the rest of the pipeline speaks.
package scanner

import (
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/config"
	"github.com/lestrrat-go/xni/encoding"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/internal/stack"
	"github.com/lestrrat-go/xni/internal/stack/nsstack"
	"github.com/lestrrat-go/xni/internal/tracelog"
	"github.com/lestrrat-go/xni/settings"
)

// featureSource is implemented by configurations that keep the DOM
// style feature register (see config.Configuration).
type featureSource interface {
	Features() config.Features
}

// Scanner reads a document with encoding/xml and reports it to a
// event.DocumentHandler.
type Scanner struct {
	handler  event.DocumentHandler
	reporter *config.ErrorReporter
	resolver event.EntityResolver

	namespaces        bool
	namespacePrefixes bool
	xmlnsURIs         bool
	disallowDoctype   bool
	features          config.Features
}

var _ config.Scanner = (*Scanner)(nil)

func New() *Scanner {
	return &Scanner{
		reporter:   defaultReporter(),
		namespaces: true,
		features:   config.DefaultFeatures,
	}
}

// defaultReporter is used when the configuration provides no error
// reporter. It has no handler, so only fatal errors surface.
func defaultReporter() *config.ErrorReporter {
	r := config.NewErrorReporter()
	r.PutMessageFormatter(config.DomainXML, config.XMLMessages)
	r.PutMessageFormatter(config.DomainXMLNS, config.XMLMessages)
	return r
}

func (s *Scanner) RecognizedFeatures() []string {
	return []string{
		settings.FeatureNamespaces,
		settings.FeatureNamespacePrefixes,
		settings.FeatureXMLNSURIs,
		settings.FeatureDisallowDoctypeDecl,
	}
}

func (s *Scanner) RecognizedProperties() []string {
	return []string{settings.PropertyErrorReporter, settings.PropertyEntityResolver}
}

func featureOr(m settings.Manager, id string, def bool) bool {
	v, err := m.Feature(id)
	if err != nil {
		return def
	}
	return v
}

// Reset reads the scanner's settings from m. Settings that m does not
// know keep their defaults.
func (s *Scanner) Reset(m settings.Manager) error {
	s.namespaces = featureOr(m, settings.FeatureNamespaces, true)
	s.namespacePrefixes = featureOr(m, settings.FeatureNamespacePrefixes, false)
	s.xmlnsURIs = featureOr(m, settings.FeatureXMLNSURIs, false)
	s.disallowDoctype = featureOr(m, settings.FeatureDisallowDoctypeDecl, false)

	s.reporter = nil
	if v, err := m.Property(settings.PropertyErrorReporter); err == nil {
		s.reporter, _ = v.(*config.ErrorReporter)
	}
	if s.reporter == nil {
		s.reporter = defaultReporter()
	}

	s.resolver = nil
	if v, err := m.Property(settings.PropertyEntityResolver); err == nil {
		s.resolver, _ = v.(event.EntityResolver)
	}

	s.features = config.DefaultFeatures
	if fs, ok := m.(featureSource); ok {
		s.features = fs.Features()
	}

	if pdebug.Enabled {
		pdebug.Printf("scanner: reset (namespaces = %t, namespace-prefixes = %t, features = %#x)", s.namespaces, s.namespacePrefixes, uint16(s.features))
	}
	return nil
}

func (s *Scanner) SetDocumentHandler(h event.DocumentHandler) {
	s.handler = h
}

// Scan reads the whole document described by in. Scanning stops at
// the first fatal error, at the first error returned by the document
// handler, or when ctx is canceled.
func (s *Scanner) Scan(ctx context.Context, in *event.InputSource) error {
	if s.handler == nil {
		return &event.Exception{Message: "scanner: no document handler"}
	}
	if in == nil {
		in = &event.InputSource{}
	}
	sctx := &scanCtx{
		Scanner: s,
		pos: &event.Position{
			Public:   in.PublicID,
			Literal:  in.SystemID,
			Expanded: ExpandSystemID(in.SystemID, in.BaseSystemID),
			Line:     1,
			Column:   1,
			Enc:      in.Encoding,
			Version:  "1.0",
		},
		nsctx: nsstack.New(),
	}
	tracelog.Event(ctx, "scanner: scan", slog.String("system_id", sctx.pos.Expanded))

	err := sctx.run(ctx, in)
	if err == errHalt {
		return nil
	}
	return err
}

// errHalt stops a scan after a fatal error that the error reporter
// chose not to raise.
var errHalt = errors.New("scan halted")

func (ctx *scanCtx) run(cctx context.Context, in *event.InputSource) error {
	r, closeInput, err := openInput(in, ctx.pos.Expanded)
	if err != nil {
		return ctx.ioError(err)
	}
	defer func() { _ = closeInput() }()

	name := in.Encoding
	if encoding.IsUTF8(name) {
		br := bufio.NewReader(r)
		detected, err := detectEncoding(br)
		if err != nil {
			return ctx.ioError(err)
		}
		r = br
		if detected != "" && detected != encUTF8 {
			name = detected
			ctx.pos.Enc = detected
		}
	}

	r, err = decodeInput(r, name)
	if err != nil {
		return ctx.fatal(nil, "EncodingNotSupported", name)
	}
	return ctx.scan(cctx, r, name != "")
}

// scanCtx is the state of a single Scan.
type scanCtx struct {
	*Scanner

	dec        *xml.Decoder
	pos        *event.Position
	nsctx      *nsstack.Stack
	elements   stack.Stack[event.QName]
	started    bool
	sawRoot    bool
	sawDoctype bool
	// set by the charset reader when the declared encoding is unknown
	badEncoding string
}

func (ctx *scanCtx) report(domain, key string, args []any, severity config.Severity, cause error) error {
	return ctx.reporter.ReportErrorCause(event.Snapshot(ctx.pos), domain, key, args, severity, cause)
}

// fatal reports a well-formedness error. Scanning stops even when
// continue-after-fatal-error is on, in which case Scan returns nil.
func (ctx *scanCtx) fatal(cause error, key string, args ...any) error {
	if err := ctx.report(config.DomainXML, key, args, config.SeverityFatalError, cause); err != nil {
		return err
	}
	return errHalt
}

func (ctx *scanCtx) fatalNS(key string, args ...any) error {
	if err := ctx.report(config.DomainXMLNS, key, args, config.SeverityFatalError, nil); err != nil {
		return err
	}
	return errHalt
}

func (ctx *scanCtx) ioError(err error) error {
	cause := &event.IOError{SystemID: ctx.pos.Expanded, Err: err}
	return ctx.fatal(cause, "IOError", ctx.pos.Expanded, err)
}

func (ctx *scanCtx) charsetReader(label string, input io.Reader) (io.Reader, error) {
	e := encoding.Load(label)
	if e == nil {
		ctx.badEncoding = label
		return nil, &encodingError{name: label}
	}
	ctx.pos.Enc = label
	return e.NewDecoder().Reader(input), nil
}

func (ctx *scanCtx) updatePosition() {
	ctx.pos.Line, ctx.pos.Column = ctx.dec.InputPos()
}

func (ctx *scanCtx) scan(cctx context.Context, r io.Reader, predecoded bool) error {
	ctx.dec = xml.NewDecoder(r)
	ctx.dec.Strict = true
	if predecoded {
		// the declaration names the encoding the input was already
		// decoded from
		ctx.dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	} else {
		ctx.dec.CharsetReader = ctx.charsetReader
	}

	var lookahead xml.Token
	var lookLine, lookColumn int
	for {
		if err := cctx.Err(); err != nil {
			return &event.Exception{Err: err}
		}

		tok := lookahead
		lookahead = nil
		if tok != nil {
			ctx.pos.Line, ctx.pos.Column = lookLine, lookColumn
		} else {
			ctx.updatePosition()
			var err error
			tok, err = ctx.dec.RawToken()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return ctx.endDocument()
				}
				return ctx.tokenError(err)
			}
		}

		if err := ctx.startDocument(tok); err != nil {
			return err
		}

		var err error
		switch t := tok.(type) {
		case xml.ProcInst:
			err = ctx.procInst(t)
		case xml.Directive:
			err = ctx.directive(t)
		case xml.StartElement:
			t = t.Copy()
			// entities of an external subset must be known before
			// the content is read
			if !ctx.sawRoot && !ctx.sawDoctype {
				if err := ctx.externalSubset(qname(t.Name)); err != nil {
					return err
				}
			}
			offset := ctx.dec.InputOffset()
			lookLine, lookColumn = ctx.dec.InputPos()
			next, nerr := ctx.dec.RawToken()
			if nerr != nil {
				// the start tag itself was fine
				if err := ctx.startElement(t, false); err != nil {
					return err
				}
				if errors.Is(nerr, io.EOF) {
					return ctx.endDocument()
				}
				ctx.pos.Line, ctx.pos.Column = lookLine, lookColumn
				return ctx.tokenError(nerr)
			}
			// encoding/xml reports <a/> as a start element followed by
			// an end element that consumes no input
			if end, ok := next.(xml.EndElement); ok && ctx.dec.InputOffset() == offset && end.Name == t.Name {
				err = ctx.startElement(t, true)
				break
			}
			lookahead = xml.CopyToken(next)
			err = ctx.startElement(t, false)
		case xml.EndElement:
			err = ctx.endElement(t)
		case xml.CharData:
			err = ctx.characters(t)
		case xml.Comment:
			err = ctx.comment(t)
		}
		if err != nil {
			return err
		}
	}
}

func (ctx *scanCtx) tokenError(err error) error {
	if ctx.badEncoding != "" {
		return ctx.fatal(nil, "EncodingNotSupported", ctx.badEncoding)
	}

	var serr *xml.SyntaxError
	if !errors.As(err, &serr) {
		return ctx.ioError(err)
	}
	ctx.pos.Line = serr.Line
	switch {
	case strings.Contains(serr.Msg, "unexpected EOF"):
		return ctx.fatal(nil, "PrematureEOF", ctx.dec.InputOffset())
	case strings.Contains(serr.Msg, "invalid UTF-8"):
		cause := &event.CharConversionError{Encoding: ctx.pos.Enc, Err: serr}
		return ctx.fatal(cause, "InvalidCharInContent", serr.Msg)
	case strings.HasPrefix(serr.Msg, "invalid character entity &"):
		name := strings.TrimSuffix(strings.TrimPrefix(serr.Msg, "invalid character entity &"), ";")
		return ctx.fatal(nil, "EntityNotDeclared", name)
	}
	return ctx.fatal(nil, "MarkupNotRecognizedInContent", serr.Msg)
}

// startDocument emits the start of the document before the first
// token. When that token is the XML declaration, its encoding is
// reported.
func (ctx *scanCtx) startDocument(tok xml.Token) error {
	if ctx.started {
		return nil
	}
	ctx.started = true

	enc := ctx.pos.Enc
	if pi, ok := tok.(xml.ProcInst); ok && pi.Target == "xml" {
		if v, ok := pseudoAttributes(pi.Inst)["encoding"]; ok && enc == "" {
			enc = v
		}
	}
	if enc == "" {
		enc = "UTF-8"
	}
	ctx.pos.Enc = enc
	return ctx.handler.StartDocument(ctx.pos, enc, ctx.nsctx, nil)
}

func (ctx *scanCtx) endDocument() error {
	if ctx.elements.Len() > 0 {
		top, _ := ctx.elements.Top()
		return ctx.fatal(nil, "ETagRequired", top.RawName)
	}
	if !ctx.sawRoot {
		return ctx.fatal(nil, "PrematureEOF", ctx.dec.InputOffset())
	}
	return ctx.handler.EndDocument(nil)
}

func (ctx *scanCtx) procInst(pi xml.ProcInst) error {
	if pi.Target != "xml" {
		return ctx.handler.ProcessingInstruction(pi.Target, pi.Inst, nil)
	}

	attrs := pseudoAttributes(pi.Inst)
	version := attrs["version"]
	if version != "" {
		ctx.pos.Version = version
	}
	return ctx.handler.XMLDecl(version, attrs["encoding"], attrs["standalone"], nil)
}

func (ctx *scanCtx) directive(d xml.Directive) error {
	dt, ok, err := parseDoctype(d)
	if !ok {
		// comments and conditional sections outside the DTD are not
		// reported
		return nil
	}
	if err != nil {
		var derr *declError
		if errors.As(err, &derr) && derr.line > 1 {
			ctx.pos.Line += derr.line - 1
			ctx.pos.Column = derr.column
		}
		return ctx.fatal(nil, "MarkupNotRecognizedInContent", err.Error())
	}
	if ctx.disallowDoctype {
		return ctx.fatal(nil, "DoctypeNotAllowed", settings.FeatureDisallowDoctypeDecl)
	}
	return ctx.doctypeDecl(dt, parseSubset(dt.subset), ctx.pos.Expanded)
}

// doctypeDecl reports a document type declaration and the notation and
// unparsed entity declarations of its subset. System ids in the subset
// are expanded against baseID.
func (ctx *scanCtx) doctypeDecl(dt *doctype, decls *declarations, baseID string) error {
	ctx.sawDoctype = true
	if len(decls.entities) > 0 {
		ctx.dec.Entity = decls.entities
	}

	if err := ctx.handler.DoctypeDecl(dt.name, dt.publicID, dt.systemID, nil); err != nil {
		return err
	}
	h, ok := ctx.handler.(event.DTDHandler)
	if !ok {
		return nil
	}
	if err := h.StartDTD(ctx.pos, nil); err != nil {
		return err
	}
	for _, d := range decls.markup {
		id := &event.ResourceIdentifier{
			Name:             d.name,
			PublicID:         d.publicID,
			LiteralSystemID:  d.systemID,
			ExpandedSystemID: ExpandSystemID(d.systemID, baseID),
			BaseSystemID:     baseID,
		}
		var err error
		switch d.kind {
		case notationDecl:
			err = h.NotationDecl(d.name, id, nil)
		case unparsedEntityDecl:
			err = h.UnparsedEntityDecl(d.name, id, d.notation, nil)
		}
		if err != nil {
			return err
		}
	}
	return h.EndDTD(nil)
}

// externalSubset asks the entity resolver for an external subset when
// the document reaches its root element without a document type
// declaration. A subset that is supplied is reported as if the
// document had declared it.
func (ctx *scanCtx) externalSubset(root event.QName) error {
	esr, ok := ctx.resolver.(event.ExternalSubsetResolver)
	if !ok || ctx.disallowDoctype {
		return nil
	}
	src, err := esr.ExternalSubset(root.RawName, ctx.pos.Expanded)
	if err != nil || src == nil {
		return err
	}

	base := src.BaseSystemID
	if base == "" {
		base = ctx.pos.Expanded
	}
	expanded := ExpandSystemID(src.SystemID, base)
	tracelog.Event(context.Background(), "scanner: external subset", slog.String("system_id", expanded))

	r, closeInput, err := openInput(src, expanded)
	if err != nil {
		return ctx.subsetIOError(expanded, err)
	}
	defer func() { _ = closeInput() }()
	r, err = decodeInput(r, src.Encoding)
	if err != nil {
		return ctx.fatal(nil, "EncodingNotSupported", src.Encoding)
	}
	subset, err := io.ReadAll(r)
	if err != nil {
		return ctx.subsetIOError(expanded, err)
	}

	dt := &doctype{name: root.RawName, publicID: src.PublicID, systemID: src.SystemID}
	return ctx.doctypeDecl(dt, parseSubset(subset), expanded)
}

func (ctx *scanCtx) subsetIOError(systemID string, err error) error {
	cause := &event.IOError{SystemID: systemID, Err: err}
	return ctx.fatal(cause, "IOError", systemID, err)
}

func qname(n xml.Name) event.QName {
	q := event.QName{Prefix: n.Space, LocalPart: n.Local, RawName: n.Local}
	if n.Space != "" {
		q.RawName = n.Space + ":" + n.Local
	}
	return q
}

func isNamespaceDecl(n xml.Name) bool {
	return (n.Space == "" && n.Local == "xmlns") || n.Space == "xmlns"
}

func (ctx *scanCtx) startElement(t xml.StartElement, empty bool) error {
	ctx.sawRoot = true
	elem := qname(t.Name)

	if ctx.namespaces {
		ctx.nsctx.PushContext()
		for _, a := range t.Attr {
			switch {
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				ctx.nsctx.DeclarePrefix("", a.Value)
			case a.Name.Space == "xmlns":
				ctx.nsctx.DeclarePrefix(a.Name.Local, a.Value)
			}
		}

		uri, ok := ctx.nsctx.URI(elem.Prefix)
		if !ok && elem.Prefix != "" {
			return ctx.fatalNS("ElementPrefixUnbound", elem.Prefix, elem.RawName)
		}
		elem.URI = uri
	}

	attrs := event.NewAttributes()
	for _, a := range t.Attr {
		name := qname(a.Name)
		if ctx.namespaces {
			switch {
			case isNamespaceDecl(a.Name):
				if !ctx.namespacePrefixes {
					continue
				}
				if ctx.xmlnsURIs {
					name.URI = nsstack.XMLNSNamespace
				}
			case name.Prefix != "":
				uri, ok := ctx.nsctx.URI(name.Prefix)
				if !ok {
					return ctx.fatalNS("AttributePrefixUnbound", name.Prefix, name.RawName, elem.RawName)
				}
				name.URI = uri
			}
		}
		attrs.Add(event.Attribute{Name: name, Type: "CDATA", Value: a.Value, Specified: true})
	}

	if empty {
		if err := ctx.handler.EmptyElement(elem, attrs, nil); err != nil {
			return err
		}
		if ctx.namespaces {
			ctx.nsctx.PopContext()
		}
		return nil
	}

	ctx.elements.Push(elem)
	return ctx.handler.StartElement(elem, attrs, nil)
}

func (ctx *scanCtx) endElement(t xml.EndElement) error {
	top, ok := ctx.elements.Top()
	if !ok || top.RawName != qname(t.Name).RawName {
		if !ok {
			return ctx.fatal(nil, "MarkupNotRecognizedInContent", "unexpected end tag </"+qname(t.Name).RawName+">")
		}
		return ctx.fatal(nil, "ETagRequired", top.RawName)
	}
	ctx.elements.Pop()

	if err := ctx.handler.EndElement(top, nil); err != nil {
		return err
	}
	if ctx.namespaces {
		ctx.nsctx.PopContext()
	}
	return nil
}

func (ctx *scanCtx) characters(data xml.CharData) error {
	// whitespace in the prolog and epilog is not content
	if ctx.elements.Len() == 0 {
		if len(strings.TrimLeft(string(data), " \t\r\n")) > 0 {
			return ctx.fatal(nil, "MarkupNotRecognizedInContent", "character data outside the root element")
		}
		return nil
	}
	return ctx.handler.Characters(data, nil)
}

func (ctx *scanCtx) comment(data xml.Comment) error {
	if !ctx.features.IsSet(config.Comments) {
		return nil
	}
	return ctx.handler.Comment(data, nil)
}
