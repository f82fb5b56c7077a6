// Package sax defines the push-style listener interfaces that
// receive document events from the parser, and SAX2, a callback
// based implementation of all of them.
package sax

import "io"

// Locator reports where in the document the current event happened.
type Locator interface {
	PublicID() string
	SystemID() string
	LineNumber() int
	ColumnNumber() int
	XMLVersion() string
	Encoding() string
}

// Attributes is the attribute list passed to StartElement. It is
// only valid for the duration of the callback.
type Attributes interface {
	Len() int
	QName(i int) string
	URI(i int) string
	LocalName(i int) string
	Type(i int) string
	Value(i int) string
	// Index returns the index of the attribute with the given
	// qualified name, or -1
	Index(qname string) int
	// IndexNS returns the index of the attribute with the given
	// namespace URI and local name, or -1
	IndexNS(uri, localName string) int
	// IsDeclared reports whether the attribute was declared in the DTD
	IsDeclared(i int) bool
	// IsSpecified reports whether the attribute was present in the
	// document, as opposed to defaulted
	IsSpecified(i int) bool
}

// ContentHandler receives the logical content of a document.
type ContentHandler interface {
	SetDocumentLocator(loc Locator) error
	StartDocument() error
	EndDocument() error
	StartPrefixMapping(prefix, uri string) error
	EndPrefixMapping(prefix string) error
	StartElement(uri, localName, qname string, attrs Attributes) error
	EndElement(uri, localName, qname string) error
	Characters(ch []byte) error
	IgnorableWhitespace(ch []byte) error
	ProcessingInstruction(target, data string) error
	SkippedEntity(name string) error
}

// DocumentHandler is the minimal, namespace unaware listener.
type DocumentHandler interface {
	SetDocumentLocator(loc Locator) error
	StartDocument() error
	EndDocument() error
	StartElement(name string, attrs Attributes) error
	EndElement(name string) error
	Characters(ch []byte) error
	IgnorableWhitespace(ch []byte) error
	ProcessingInstruction(target, data string) error
}

// LexicalHandler receives the lexical details that ContentHandler
// does not report.
type LexicalHandler interface {
	StartDTD(name, publicID, systemID string) error
	EndDTD() error
	StartEntity(name string) error
	EndEntity(name string) error
	StartCDATA() error
	EndCDATA() error
	Comment(ch []byte) error
}

// ErrorHandler receives warnings and errors. Returning an error from
// any method aborts the parse.
type ErrorHandler interface {
	Warning(err *ParseError) error
	Error(err *ParseError) error
	FatalError(err *ParseError) error
}

// DTDHandler receives notation and unparsed entity declarations.
type DTDHandler interface {
	NotationDecl(name, publicID, systemID string) error
	UnparsedEntityDecl(name, publicID, systemID, notation string) error
}

// EntityResolver resolves external entities. Returning a nil
// InputSource and a nil error asks the parser to open the system id
// itself.
type EntityResolver interface {
	ResolveEntity(publicID, systemID string) (*InputSource, error)
}

// EntityResolver2 is an EntityResolver that also receives the entity
// name and base URI, and can supply an external subset for documents
// that have none.
type EntityResolver2 interface {
	EntityResolver
	ResolveEntityWithBase(name, publicID, baseURI, systemID string) (*InputSource, error)
	GetExternalSubset(name, baseURI string) (*InputSource, error)
}

// InputSource describes where a document comes from.
type InputSource struct {
	PublicID   string
	SystemID   string
	ByteStream io.Reader
	Encoding   string
}
