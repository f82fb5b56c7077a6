package xni

import (
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/sax"
)

// listenerError marks err as coming from a listener.
func listenerError(err error) error {
	return event.Wrap(err)
}

func (p *Parser) StartDocument(loc event.Locator, _ string, nsctx event.NamespaceContext, _ event.Augmentations) error {
	p.nsctx = nsctx

	if p.documentHandler != nil {
		if loc != nil {
			if err := p.documentHandler.SetDocumentLocator(&locatorProxy{loc: loc}); err != nil {
				return listenerError(err)
			}
		}
		// SetDocumentLocator may have detached the handler
		if h := p.documentHandler; h != nil {
			if err := h.StartDocument(); err != nil {
				return listenerError(err)
			}
		}
	}

	if p.contentHandler != nil {
		if loc != nil {
			if err := p.contentHandler.SetDocumentLocator(&locatorProxy{loc: loc}); err != nil {
				return listenerError(err)
			}
		}
		if h := p.contentHandler; h != nil {
			if err := h.StartDocument(); err != nil {
				return listenerError(err)
			}
		}
	}
	return nil
}

// XMLDecl records the version and standalone declaration. Nothing is
// forwarded.
func (p *Parser) XMLDecl(version, _, standalone string, _ event.Augmentations) error {
	p.version = version
	p.standalone = standalone == "yes"
	return nil
}

func (p *Parser) DoctypeDecl(rootElement, publicID, systemID string, _ event.Augmentations) error {
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.StartDTD(rootElement, publicID, systemID))
	}
	return nil
}

// StartDTD does nothing: DoctypeDecl already reported the start.
func (p *Parser) StartDTD(event.Locator, event.Augmentations) error {
	return nil
}

// dtdSystemID is the system id reported to the DTDHandler. It is the
// expanded id unless resolve-dtd-uris is off.
func (p *Parser) dtdSystemID(id *event.ResourceIdentifier) string {
	if id == nil {
		return ""
	}
	if p.resolveDTDURIs {
		return id.ExpandedSystemID
	}
	return id.LiteralSystemID
}

func (p *Parser) NotationDecl(name string, id *event.ResourceIdentifier, _ event.Augmentations) error {
	if p.dtdHandler == nil {
		return nil
	}
	var publicID string
	if id != nil {
		publicID = id.PublicID
	}
	return listenerError(p.dtdHandler.NotationDecl(name, publicID, p.dtdSystemID(id)))
}

func (p *Parser) UnparsedEntityDecl(name string, id *event.ResourceIdentifier, notation string, _ event.Augmentations) error {
	if p.dtdHandler == nil {
		return nil
	}
	var publicID string
	if id != nil {
		publicID = id.PublicID
	}
	return listenerError(p.dtdHandler.UnparsedEntityDecl(name, publicID, p.dtdSystemID(id), notation))
}

func (p *Parser) EndDTD(event.Augmentations) error {
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.EndDTD())
	}
	return nil
}

// StartGeneralEntity reports skipped entities to the ContentHandler,
// and entities that were read to the LexicalHandler.
func (p *Parser) StartGeneralEntity(name string, _ *event.ResourceIdentifier, _ string, augs event.Augmentations) error {
	if augs.IsTrue(event.AugEntitySkipped) {
		if p.contentHandler != nil {
			return listenerError(p.contentHandler.SkippedEntity(name))
		}
		return nil
	}
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.StartEntity(name))
	}
	return nil
}

func (p *Parser) EndGeneralEntity(name string, augs event.Augmentations) error {
	if augs.IsTrue(event.AugEntitySkipped) {
		return nil
	}
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.EndEntity(name))
	}
	return nil
}

func (p *Parser) StartElement(elem event.QName, attrs *event.Attributes, _ event.Augmentations) error {
	if p.documentHandler != nil {
		p.attributes.attrs = attrs
		if err := p.documentHandler.StartElement(elem.RawName, &p.attributes); err != nil {
			return listenerError(err)
		}
	}

	if h := p.contentHandler; h != nil {
		if p.namespaces {
			if err := p.startNamespaceMapping(h); err != nil {
				return listenerError(err)
			}
		}

		localName := ""
		if p.namespaces {
			localName = elem.LocalPart
		}
		p.attributes.attrs = attrs
		if err := h.StartElement(elem.URI, localName, elem.RawName, &p.attributes); err != nil {
			return listenerError(err)
		}
	}
	return nil
}

func (p *Parser) EmptyElement(elem event.QName, attrs *event.Attributes, augs event.Augmentations) error {
	if err := p.StartElement(elem, attrs, augs); err != nil {
		return err
	}
	return p.EndElement(elem, augs)
}

func (p *Parser) Characters(text []byte, _ event.Augmentations) error {
	if len(text) == 0 {
		return nil
	}
	if p.documentHandler != nil {
		if err := p.documentHandler.Characters(text); err != nil {
			return listenerError(err)
		}
	}
	if p.contentHandler != nil {
		return listenerError(p.contentHandler.Characters(text))
	}
	return nil
}

func (p *Parser) IgnorableWhitespace(text []byte, _ event.Augmentations) error {
	if len(text) == 0 {
		return nil
	}
	if p.documentHandler != nil {
		if err := p.documentHandler.IgnorableWhitespace(text); err != nil {
			return listenerError(err)
		}
	}
	if p.contentHandler != nil {
		return listenerError(p.contentHandler.IgnorableWhitespace(text))
	}
	return nil
}

func (p *Parser) EndElement(elem event.QName, _ event.Augmentations) error {
	if p.documentHandler != nil {
		if err := p.documentHandler.EndElement(elem.RawName); err != nil {
			return listenerError(err)
		}
	}

	if h := p.contentHandler; h != nil {
		localName := ""
		if p.namespaces {
			localName = elem.LocalPart
		}
		if err := h.EndElement(elem.URI, localName, elem.RawName); err != nil {
			return listenerError(err)
		}
		if p.namespaces {
			return listenerError(p.endNamespaceMapping(h))
		}
	}
	return nil
}

func (p *Parser) StartCDATA(event.Augmentations) error {
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.StartCDATA())
	}
	return nil
}

func (p *Parser) EndCDATA(event.Augmentations) error {
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.EndCDATA())
	}
	return nil
}

func (p *Parser) Comment(text []byte, _ event.Augmentations) error {
	if p.lexicalHandler != nil {
		return listenerError(p.lexicalHandler.Comment(text))
	}
	return nil
}

func (p *Parser) ProcessingInstruction(target string, data []byte, _ event.Augmentations) error {
	if p.documentHandler != nil {
		if err := p.documentHandler.ProcessingInstruction(target, string(data)); err != nil {
			return listenerError(err)
		}
	}
	if p.contentHandler != nil {
		return listenerError(p.contentHandler.ProcessingInstruction(target, string(data)))
	}
	return nil
}

func (p *Parser) EndDocument(event.Augmentations) error {
	if p.documentHandler != nil {
		if err := p.documentHandler.EndDocument(); err != nil {
			return listenerError(err)
		}
	}
	if p.contentHandler != nil {
		return listenerError(p.contentHandler.EndDocument())
	}
	return nil
}

// startNamespaceMapping reports the prefixes declared by the current
// element, in declaration order.
func (p *Parser) startNamespaceMapping(h sax.ContentHandler) error {
	if p.nsctx == nil {
		return nil
	}
	for i := range p.nsctx.DeclaredPrefixCount() {
		prefix := p.nsctx.DeclaredPrefixAt(i)
		uri, _ := p.nsctx.URI(prefix)
		if err := h.StartPrefixMapping(prefix, uri); err != nil {
			return err
		}
	}
	return nil
}

// endNamespaceMapping ends the prefixes declared by the current
// element, in the same order startNamespaceMapping started them.
func (p *Parser) endNamespaceMapping(h sax.ContentHandler) error {
	if p.nsctx == nil {
		return nil
	}
	for i := range p.nsctx.DeclaredPrefixCount() {
		if err := h.EndPrefixMapping(p.nsctx.DeclaredPrefixAt(i)); err != nil {
			return err
		}
	}
	return nil
}
