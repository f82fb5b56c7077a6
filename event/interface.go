// Package event defines the internal structural event protocol that
// flows through a parser pipeline. A scanner (or any other pipeline
// component) emits one DocumentHandler callback per structural token,
// each carrying an Augmentations side channel.
package event

import "io"

// Augmentation keys set by upstream producers.
const (
	// AugEntitySkipped is set to true on start/end general entity
	// events when the entity was not expanded.
	AugEntitySkipped = "ENTITY_SKIPPED"
	// AugAttributeDeclared is set to true on an attribute's
	// augmentations when the attribute was declared in the DTD.
	AugAttributeDeclared = "ATTRIBUTE_DECLARED"
)

// QName is a qualified name as seen by the pipeline. An empty URI
// means that no namespace is bound.
type QName struct {
	Prefix    string
	LocalPart string
	RawName   string
	URI       string
}

// Locator reports the position of the event being processed.
type Locator interface {
	PublicID() string
	LiteralSystemID() string
	ExpandedSystemID() string
	LineNumber() int
	ColumnNumber() int
	Encoding() string
	XMLVersion() string
}

// NamespaceContext is the set of prefix bindings in scope. The
// declared prefixes are the ones introduced by the current element,
// in declaration order.
type NamespaceContext interface {
	PushContext()
	PopContext()
	DeclarePrefix(prefix, uri string) bool
	URI(prefix string) (string, bool)
	DeclaredPrefixCount() int
	DeclaredPrefixAt(i int) string
}

// ResourceIdentifier identifies an external resource such as an entity.
type ResourceIdentifier struct {
	// Name is the entity name, when the resource is an entity
	Name             string
	PublicID         string
	LiteralSystemID  string
	ExpandedSystemID string
	BaseSystemID     string
}

// InputSource describes the input of a parse.
type InputSource struct {
	PublicID     string
	SystemID     string
	BaseSystemID string
	ByteStream   io.Reader
	Encoding     string
}

// DocumentHandler receives the structural events of a document.
// Returning an error aborts the pipeline.
type DocumentHandler interface {
	StartDocument(loc Locator, encoding string, nsctx NamespaceContext, augs Augmentations) error
	XMLDecl(version, encoding, standalone string, augs Augmentations) error
	DoctypeDecl(rootElement, publicID, systemID string, augs Augmentations) error
	Comment(text []byte, augs Augmentations) error
	ProcessingInstruction(target string, data []byte, augs Augmentations) error
	StartElement(elem QName, attrs *Attributes, augs Augmentations) error
	EmptyElement(elem QName, attrs *Attributes, augs Augmentations) error
	StartGeneralEntity(name string, id *ResourceIdentifier, encoding string, augs Augmentations) error
	EndGeneralEntity(name string, augs Augmentations) error
	Characters(text []byte, augs Augmentations) error
	IgnorableWhitespace(text []byte, augs Augmentations) error
	EndElement(elem QName, augs Augmentations) error
	StartCDATA(augs Augmentations) error
	EndCDATA(augs Augmentations) error
	EndDocument(augs Augmentations) error
}

// DTDHandler is implemented by document handlers that want the
// contents of the document type declaration. Producers check for it
// with a type assertion after calling DoctypeDecl; declarations are
// reported between StartDTD and EndDTD.
type DTDHandler interface {
	StartDTD(loc Locator, augs Augmentations) error
	NotationDecl(name string, id *ResourceIdentifier, augs Augmentations) error
	UnparsedEntityDecl(name string, id *ResourceIdentifier, notation string, augs Augmentations) error
	EndDTD(augs Augmentations) error
}

// ExternalSubsetResolver is implemented by entity resolvers that can
// supply an external subset for documents that declare none.
type ExternalSubsetResolver interface {
	ExternalSubset(rootElement, baseSystemID string) (*InputSource, error)
}

// ErrorHandler receives problems reported by pipeline components.
// Returning a non-nil error aborts the parse.
type ErrorHandler interface {
	Warning(domain, key string, err *ParseError) error
	Error(domain, key string, err *ParseError) error
	FatalError(domain, key string, err *ParseError) error
}

// EntityResolver resolves external resources. A nil InputSource
// with a nil error means the default resolution applies.
type EntityResolver interface {
	ResolveEntity(id *ResourceIdentifier) (*InputSource, error)
}
