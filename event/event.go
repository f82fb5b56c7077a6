package event

import "strconv"

// Kind discriminates the structural events.
type Kind int

const (
	KindInvalid Kind = iota
	KindStartDocument
	KindXMLDecl
	KindDoctype
	KindStartElement
	KindEmptyElement
	KindCharacters
	KindIgnorableWhitespace
	KindEndElement
	KindStartEntity
	KindEndEntity
	KindStartCDATA
	KindEndCDATA
	KindComment
	KindProcessingInstruction
	KindEndDocument
	KindStartDTD
	KindNotationDecl
	KindUnparsedEntityDecl
	KindEndDTD
)

var kindNames = [...]string{
	KindInvalid:               "Invalid",
	KindStartDocument:         "StartDocument",
	KindXMLDecl:               "XMLDecl",
	KindDoctype:               "Doctype",
	KindStartElement:          "StartElement",
	KindEmptyElement:          "EmptyElement",
	KindCharacters:            "Characters",
	KindIgnorableWhitespace:   "IgnorableWhitespace",
	KindEndElement:            "EndElement",
	KindStartEntity:           "StartEntity",
	KindEndEntity:             "EndEntity",
	KindStartCDATA:            "StartCDATA",
	KindEndCDATA:              "EndCDATA",
	KindComment:               "Comment",
	KindProcessingInstruction: "ProcessingInstruction",
	KindEndDocument:           "EndDocument",
	KindStartDTD:              "StartDTD",
	KindNotationDecl:          "NotationDecl",
	KindUnparsedEntityDecl:    "UnparsedEntityDecl",
	KindEndDTD:                "EndDTD",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// NamespaceBinding is a prefix declaration carried by an element event.
type NamespaceBinding struct {
	Prefix string
	URI    string
}

// Event is a recorded structural event. Only the fields relevant to
// Kind are meaningful.
type Event struct {
	Kind Kind

	// StartDocument, StartDTD
	Locator          Locator
	NamespaceContext NamespaceContext

	// XMLDecl, StartDocument, StartEntity
	Version    string
	Encoding   string
	Standalone string

	// Doctype (Name is the root element), StartEntity/EndEntity and
	// the declarations (entity or notation name), ProcessingInstruction
	// (target)
	Name       string
	PublicID   string
	SystemID   string
	Identifier *ResourceIdentifier
	// UnparsedEntityDecl
	Notation string

	// StartElement, EmptyElement, EndElement
	Element    QName
	Attributes *Attributes
	Namespaces []NamespaceBinding

	// Characters, IgnorableWhitespace, Comment, ProcessingInstruction
	Text []byte

	Augs Augmentations
}

// Dispatch delivers the event to h. DTD events are dropped unless h
// is also a DTDHandler.
func (e *Event) Dispatch(h DocumentHandler) error {
	switch e.Kind {
	case KindStartDTD, KindNotationDecl, KindUnparsedEntityDecl, KindEndDTD:
		dh, ok := h.(DTDHandler)
		if !ok {
			return nil
		}
		return e.dispatchDTD(dh)
	case KindStartDocument:
		return h.StartDocument(e.Locator, e.Encoding, e.NamespaceContext, e.Augs)
	case KindXMLDecl:
		return h.XMLDecl(e.Version, e.Encoding, e.Standalone, e.Augs)
	case KindDoctype:
		return h.DoctypeDecl(e.Name, e.PublicID, e.SystemID, e.Augs)
	case KindStartElement:
		return h.StartElement(e.Element, e.Attributes, e.Augs)
	case KindEmptyElement:
		return h.EmptyElement(e.Element, e.Attributes, e.Augs)
	case KindCharacters:
		return h.Characters(e.Text, e.Augs)
	case KindIgnorableWhitespace:
		return h.IgnorableWhitespace(e.Text, e.Augs)
	case KindEndElement:
		return h.EndElement(e.Element, e.Augs)
	case KindStartEntity:
		return h.StartGeneralEntity(e.Name, e.Identifier, e.Encoding, e.Augs)
	case KindEndEntity:
		return h.EndGeneralEntity(e.Name, e.Augs)
	case KindStartCDATA:
		return h.StartCDATA(e.Augs)
	case KindEndCDATA:
		return h.EndCDATA(e.Augs)
	case KindComment:
		return h.Comment(e.Text, e.Augs)
	case KindProcessingInstruction:
		return h.ProcessingInstruction(e.Name, e.Text, e.Augs)
	case KindEndDocument:
		return h.EndDocument(e.Augs)
	}
	return &Exception{Message: "invalid event kind " + e.Kind.String()}
}

func (e *Event) dispatchDTD(h DTDHandler) error {
	switch e.Kind {
	case KindStartDTD:
		return h.StartDTD(e.Locator, e.Augs)
	case KindNotationDecl:
		return h.NotationDecl(e.Name, e.Identifier, e.Augs)
	case KindUnparsedEntityDecl:
		return h.UnparsedEntityDecl(e.Name, e.Identifier, e.Notation, e.Augs)
	}
	return h.EndDTD(e.Augs)
}

// Replay feeds recorded events to h in order, stopping at the first
// error. When the StartDocument event carries a NamespaceContext,
// Replay maintains it the way a scanner would: element events push
// a context and declare their Namespaces before being dispatched, and
// the context is popped after the matching end element.
func Replay(h DocumentHandler, events ...Event) error {
	var nsctx NamespaceContext
	for i := range events {
		ev := &events[i]
		switch ev.Kind {
		case KindStartDocument:
			nsctx = ev.NamespaceContext
		case KindStartElement, KindEmptyElement:
			if nsctx != nil {
				nsctx.PushContext()
				for _, b := range ev.Namespaces {
					nsctx.DeclarePrefix(b.Prefix, b.URI)
				}
			}
		}

		if err := ev.Dispatch(h); err != nil {
			return err
		}

		switch ev.Kind {
		case KindEndElement, KindEmptyElement:
			if nsctx != nil {
				nsctx.PopContext()
			}
		}
	}
	return nil
}
