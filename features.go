package xni

import (
	"errors"

	"github.com/lestrrat-go/xni/sax"
	"github.com/lestrrat-go/xni/settings"
)

// SetFeature sets a feature. The SAX features that the adapter
// implements itself are handled here, everything else is passed to
// the configuration.
func (p *Parser) SetFeature(id string, state bool) error {
	switch id {
	case settings.FeatureNamespaces:
		if err := p.config.SetFeature(id, state); err != nil {
			return err
		}
		p.namespaces = state
		return nil
	case settings.FeatureStringInterning:
		if !state {
			return settings.FeatureNotSupported(id)
		}
		return nil
	case settings.FeatureLexicalHandlerParameterEntities:
		p.lexicalHandlerParameterEntities = state
		return nil
	case settings.FeatureResolveDTDURIs:
		p.resolveDTDURIs = state
		return nil
	case settings.FeatureUnicodeNormalizationChecking:
		if state {
			return settings.FeatureNotSupported(id)
		}
		return nil
	case settings.FeatureXMLNSURIs:
		// only configurations whose scanner binds xmlns attributes
		// recognize the feature
		if err := p.config.SetFeature(id, state); err != nil && !errors.Is(err, settings.ErrNotRecognized) {
			return err
		}
		p.xmlnsURIs = state
		return nil
	case settings.FeatureUseEntityResolver2:
		if state != p.useEntityResolver2 {
			p.useEntityResolver2 = state
			p.SetEntityResolver(p.EntityResolver())
		}
		return nil
	case settings.FeatureIsStandalone, settings.FeatureUseAttributes2, settings.FeatureUseLocator2:
		// read-only
		return settings.FeatureNotSupported(id)
	}
	return p.config.SetFeature(id, state)
}

// Feature returns the state of a feature.
func (p *Parser) Feature(id string) (bool, error) {
	switch id {
	case settings.FeatureStringInterning:
		return true, nil
	case settings.FeatureIsStandalone:
		return p.standalone, nil
	case settings.FeatureLexicalHandlerParameterEntities:
		return p.lexicalHandlerParameterEntities, nil
	case settings.FeatureResolveDTDURIs:
		return p.resolveDTDURIs, nil
	case settings.FeatureXMLNSURIs:
		return p.xmlnsURIs, nil
	case settings.FeatureUnicodeNormalizationChecking:
		return false, nil
	case settings.FeatureUseEntityResolver2:
		return p.useEntityResolver2, nil
	case settings.FeatureUseAttributes2, settings.FeatureUseLocator2:
		return true, nil
	}
	return p.config.Feature(id)
}

// SetProperty sets a property. The lexical handler cannot be changed
// while parsing, and dom-node and document-xml-version are read-only.
func (p *Parser) SetProperty(id string, value any) error {
	switch id {
	case settings.PropertyLexicalHandler:
		if value == nil {
			return p.SetLexicalHandler(nil)
		}
		h, ok := value.(sax.LexicalHandler)
		if !ok {
			return settings.PropertyNotSupported(id)
		}
		return p.SetLexicalHandler(h)
	case settings.PropertyDOMNode, settings.PropertyDocumentXMLVersion:
		return settings.PropertyNotSupported(id)
	}
	return p.config.SetProperty(id, value)
}

// Property returns the value of a property.
func (p *Parser) Property(id string) (any, error) {
	switch id {
	case settings.PropertyDocumentXMLVersion:
		return p.version, nil
	case settings.PropertyLexicalHandler:
		if h := p.lexicalHandler; h != nil {
			return h, nil
		}
		return nil, nil
	case settings.PropertyDOMNode:
		return nil, settings.PropertyNotSupported(id)
	}
	return p.config.Property(id)
}
