package xni

import (
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/sax"
)

// locatorProxy exposes an event.Locator as a sax.Locator. The system
// id is the expanded one.
type locatorProxy struct {
	loc event.Locator
}

var _ sax.Locator = (*locatorProxy)(nil)

func (l *locatorProxy) PublicID() string   { return l.loc.PublicID() }
func (l *locatorProxy) SystemID() string   { return l.loc.ExpandedSystemID() }
func (l *locatorProxy) LineNumber() int    { return l.loc.LineNumber() }
func (l *locatorProxy) ColumnNumber() int  { return l.loc.ColumnNumber() }
func (l *locatorProxy) XMLVersion() string { return l.loc.XMLVersion() }
func (l *locatorProxy) Encoding() string   { return l.loc.Encoding() }

// attributesProxy exposes the attributes of the current start element
// event as sax.Attributes. Out of range indices read as zero values.
type attributesProxy struct {
	attrs *event.Attributes
}

var _ sax.Attributes = (*attributesProxy)(nil)

func (a *attributesProxy) at(i int) *event.Attribute {
	if i < 0 || i >= a.attrs.Len() {
		return nil
	}
	return a.attrs.At(i)
}

func (a *attributesProxy) Len() int {
	return a.attrs.Len()
}

func (a *attributesProxy) QName(i int) string {
	if attr := a.at(i); attr != nil {
		return attr.Name.RawName
	}
	return ""
}

func (a *attributesProxy) URI(i int) string {
	if attr := a.at(i); attr != nil {
		return attr.Name.URI
	}
	return ""
}

func (a *attributesProxy) LocalName(i int) string {
	if attr := a.at(i); attr != nil {
		return attr.Name.LocalPart
	}
	return ""
}

func (a *attributesProxy) Type(i int) string {
	if attr := a.at(i); attr != nil {
		return attr.Type
	}
	return ""
}

func (a *attributesProxy) Value(i int) string {
	if attr := a.at(i); attr != nil {
		return attr.Value
	}
	return ""
}

func (a *attributesProxy) Index(qname string) int {
	return a.attrs.Index(qname)
}

func (a *attributesProxy) IndexNS(uri, localName string) int {
	return a.attrs.IndexNS(uri, localName)
}

func (a *attributesProxy) IsDeclared(i int) bool {
	if attr := a.at(i); attr != nil {
		return attr.Augs.IsTrue(event.AugAttributeDeclared)
	}
	return false
}

func (a *attributesProxy) IsSpecified(i int) bool {
	if attr := a.at(i); attr != nil {
		return attr.Specified
	}
	return false
}
