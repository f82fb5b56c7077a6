package sax

// SetDocumentLocatorFunc defines the function type for SAX2.SetDocumentLocatorHandler
type SetDocumentLocatorFunc func(loc Locator) error

// StartDocumentFunc defines the function type for SAX2.StartDocumentHandler
type StartDocumentFunc func() error

// EndDocumentFunc defines the function type for SAX2.EndDocumentHandler
type EndDocumentFunc func() error

// StartPrefixMappingFunc defines the function type for SAX2.StartPrefixMappingHandler
type StartPrefixMappingFunc func(prefix, uri string) error

// EndPrefixMappingFunc defines the function type for SAX2.EndPrefixMappingHandler
type EndPrefixMappingFunc func(prefix string) error

// StartElementFunc defines the function type for SAX2.StartElementHandler
type StartElementFunc func(uri, localName, qname string, attrs Attributes) error

// EndElementFunc defines the function type for SAX2.EndElementHandler
type EndElementFunc func(uri, localName, qname string) error

// CharactersFunc defines the function type for SAX2.CharactersHandler
type CharactersFunc func(ch []byte) error

// IgnorableWhitespaceFunc defines the function type for SAX2.IgnorableWhitespaceHandler
type IgnorableWhitespaceFunc func(ch []byte) error

// ProcessingInstructionFunc defines the function type for SAX2.ProcessingInstructionHandler
type ProcessingInstructionFunc func(target, data string) error

// SkippedEntityFunc defines the function type for SAX2.SkippedEntityHandler
type SkippedEntityFunc func(name string) error

// StartDTDFunc defines the function type for SAX2.StartDTDHandler
type StartDTDFunc func(name, publicID, systemID string) error

// EndDTDFunc defines the function type for SAX2.EndDTDHandler
type EndDTDFunc func() error

// StartEntityFunc defines the function type for SAX2.StartEntityHandler
type StartEntityFunc func(name string) error

// EndEntityFunc defines the function type for SAX2.EndEntityHandler
type EndEntityFunc func(name string) error

// StartCDATAFunc defines the function type for SAX2.StartCDATAHandler
type StartCDATAFunc func() error

// EndCDATAFunc defines the function type for SAX2.EndCDATAHandler
type EndCDATAFunc func() error

// CommentFunc defines the function type for SAX2.CommentHandler
type CommentFunc func(ch []byte) error

// NotationDeclFunc defines the function type for SAX2.NotationDeclHandler
type NotationDeclFunc func(name, publicID, systemID string) error

// UnparsedEntityDeclFunc defines the function type for SAX2.UnparsedEntityDeclHandler
type UnparsedEntityDeclFunc func(name, publicID, systemID, notation string) error

// ParseErrorFunc defines the function type for SAX2.WarningHandler,
// SAX2.ErrorHandler and SAX2.FatalErrorHandler
type ParseErrorFunc func(err *ParseError) error

// SAX2 is the callback based listener. It satisfies ContentHandler,
// LexicalHandler, DTDHandler and ErrorHandler. Events without a registered
// callback are ignored, except fatal errors which are returned so
// that the parse stops.
type SAX2 struct {
	SetDocumentLocatorHandler    SetDocumentLocatorFunc
	StartDocumentHandler         StartDocumentFunc
	EndDocumentHandler           EndDocumentFunc
	StartPrefixMappingHandler    StartPrefixMappingFunc
	EndPrefixMappingHandler      EndPrefixMappingFunc
	StartElementHandler          StartElementFunc
	EndElementHandler            EndElementFunc
	CharactersHandler            CharactersFunc
	IgnorableWhitespaceHandler   IgnorableWhitespaceFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	SkippedEntityHandler         SkippedEntityFunc
	StartDTDHandler              StartDTDFunc
	EndDTDHandler                EndDTDFunc
	StartEntityHandler           StartEntityFunc
	EndEntityHandler             EndEntityFunc
	StartCDATAHandler            StartCDATAFunc
	EndCDATAHandler              EndCDATAFunc
	CommentHandler               CommentFunc
	NotationDeclHandler          NotationDeclFunc
	UnparsedEntityDeclHandler    UnparsedEntityDeclFunc
	WarningHandler               ParseErrorFunc
	ErrorHandler                 ParseErrorFunc
	FatalErrorHandler            ParseErrorFunc
}

var _ ContentHandler = (*SAX2)(nil)
var _ LexicalHandler = (*SAX2)(nil)
var _ DTDHandler = (*SAX2)(nil)
var _ ErrorHandler = (*SAX2)(nil)

// New creates a new instance of SAX2. All callbacks are
// uninitialized.
func New() *SAX2 {
	return &SAX2{}
}

// SetDocumentLocator satisfies the ContentHandler interface
func (s *SAX2) SetDocumentLocator(loc Locator) error {
	if h := s.SetDocumentLocatorHandler; h != nil {
		return h(loc)
	}
	return nil
}

// StartDocument satisfies the ContentHandler interface
func (s *SAX2) StartDocument() error {
	if h := s.StartDocumentHandler; h != nil {
		return h()
	}
	return nil
}

// EndDocument satisfies the ContentHandler interface
func (s *SAX2) EndDocument() error {
	if h := s.EndDocumentHandler; h != nil {
		return h()
	}
	return nil
}

// StartPrefixMapping satisfies the ContentHandler interface
func (s *SAX2) StartPrefixMapping(prefix, uri string) error {
	if h := s.StartPrefixMappingHandler; h != nil {
		return h(prefix, uri)
	}
	return nil
}

// EndPrefixMapping satisfies the ContentHandler interface
func (s *SAX2) EndPrefixMapping(prefix string) error {
	if h := s.EndPrefixMappingHandler; h != nil {
		return h(prefix)
	}
	return nil
}

// StartElement satisfies the ContentHandler interface
func (s *SAX2) StartElement(uri, localName, qname string, attrs Attributes) error {
	if h := s.StartElementHandler; h != nil {
		return h(uri, localName, qname, attrs)
	}
	return nil
}

// EndElement satisfies the ContentHandler interface
func (s *SAX2) EndElement(uri, localName, qname string) error {
	if h := s.EndElementHandler; h != nil {
		return h(uri, localName, qname)
	}
	return nil
}

// Characters satisfies the ContentHandler interface
func (s *SAX2) Characters(ch []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ch)
	}
	return nil
}

// IgnorableWhitespace satisfies the ContentHandler interface
func (s *SAX2) IgnorableWhitespace(ch []byte) error {
	if h := s.IgnorableWhitespaceHandler; h != nil {
		return h(ch)
	}
	return nil
}

// ProcessingInstruction satisfies the ContentHandler interface
func (s *SAX2) ProcessingInstruction(target, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(target, data)
	}
	return nil
}

// SkippedEntity satisfies the ContentHandler interface
func (s *SAX2) SkippedEntity(name string) error {
	if h := s.SkippedEntityHandler; h != nil {
		return h(name)
	}
	return nil
}

// StartDTD satisfies the LexicalHandler interface
func (s *SAX2) StartDTD(name, publicID, systemID string) error {
	if h := s.StartDTDHandler; h != nil {
		return h(name, publicID, systemID)
	}
	return nil
}

// EndDTD satisfies the LexicalHandler interface
func (s *SAX2) EndDTD() error {
	if h := s.EndDTDHandler; h != nil {
		return h()
	}
	return nil
}

// StartEntity satisfies the LexicalHandler interface
func (s *SAX2) StartEntity(name string) error {
	if h := s.StartEntityHandler; h != nil {
		return h(name)
	}
	return nil
}

// EndEntity satisfies the LexicalHandler interface
func (s *SAX2) EndEntity(name string) error {
	if h := s.EndEntityHandler; h != nil {
		return h(name)
	}
	return nil
}

// StartCDATA satisfies the LexicalHandler interface
func (s *SAX2) StartCDATA() error {
	if h := s.StartCDATAHandler; h != nil {
		return h()
	}
	return nil
}

// EndCDATA satisfies the LexicalHandler interface
func (s *SAX2) EndCDATA() error {
	if h := s.EndCDATAHandler; h != nil {
		return h()
	}
	return nil
}

// Comment satisfies the LexicalHandler interface
func (s *SAX2) Comment(ch []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ch)
	}
	return nil
}

// NotationDecl satisfies the DTDHandler interface
func (s *SAX2) NotationDecl(name, publicID, systemID string) error {
	if h := s.NotationDeclHandler; h != nil {
		return h(name, publicID, systemID)
	}
	return nil
}

// UnparsedEntityDecl satisfies the DTDHandler interface
func (s *SAX2) UnparsedEntityDecl(name, publicID, systemID, notation string) error {
	if h := s.UnparsedEntityDeclHandler; h != nil {
		return h(name, publicID, systemID, notation)
	}
	return nil
}

// Warning satisfies the ErrorHandler interface
func (s *SAX2) Warning(err *ParseError) error {
	if h := s.WarningHandler; h != nil {
		return h(err)
	}
	return nil
}

// Error satisfies the ErrorHandler interface
func (s *SAX2) Error(err *ParseError) error {
	if h := s.ErrorHandler; h != nil {
		return h(err)
	}
	return nil
}

// FatalError satisfies the ErrorHandler interface. Without a
// FatalErrorHandler, err itself is returned.
func (s *SAX2) FatalError(err *ParseError) error {
	if h := s.FatalErrorHandler; h != nil {
		return h(err)
	}
	return err
}
