package sax

import (
	"fmt"
	"io"
	"strings"
)

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return s
}

func abbrev(data []byte) string {
	if len(data) > 30 {
		return string(data[:30])
	}
	return string(data)
}

// NewEventEmitter returns a SAX2 that writes one line per event to
// out, for debugging and for comparing event streams.
func NewEventEmitter(out io.Writer) *SAX2 {
	s := New()
	s.SetDocumentLocatorHandler = func(Locator) error {
		fmt.Fprintf(out, "SAX.SetDocumentLocator()\n")
		return nil
	}
	s.StartDocumentHandler = func() error {
		fmt.Fprintf(out, "SAX.StartDocument()\n")
		return nil
	}
	s.EndDocumentHandler = func() error {
		fmt.Fprintf(out, "SAX.EndDocument()\n")
		return nil
	}
	s.StartPrefixMappingHandler = func(prefix, uri string) error {
		fmt.Fprintf(out, "SAX.StartPrefixMapping(%s, %s)\n", nullable(prefix), nullable(uri))
		return nil
	}
	s.EndPrefixMappingHandler = func(prefix string) error {
		fmt.Fprintf(out, "SAX.EndPrefixMapping(%s)\n", nullable(prefix))
		return nil
	}
	s.StartElementHandler = func(uri, localName, qname string, attrs Attributes) error {
		n := 0
		if attrs != nil {
			n = attrs.Len()
		}
		fmt.Fprintf(out, "SAX.StartElementNS(%s, %s, %s, %d", nullable(uri), nullable(localName), qname, n)
		for i := range n {
			fmt.Fprintf(out, ", %s='%.4s...', %d", attrs.QName(i), attrs.Value(i), len(attrs.Value(i)))
		}
		fmt.Fprintln(out, ")")
		return nil
	}
	s.EndElementHandler = func(uri, localName, qname string) error {
		fmt.Fprintf(out, "SAX.EndElementNS(%s, %s, %s)\n", nullable(uri), nullable(localName), qname)
		return nil
	}
	s.CharactersHandler = func(data []byte) error {
		fmt.Fprintf(out, "SAX.Characters(%s, %d)\n", abbrev(data), len(data))
		return nil
	}
	s.IgnorableWhitespaceHandler = func(data []byte) error {
		fmt.Fprintf(out, "SAX.IgnorableWhitespace(%s, %d)\n", abbrev(data), len(data))
		return nil
	}
	s.ProcessingInstructionHandler = func(target, data string) error {
		fmt.Fprintf(out, "SAX.ProcessingInstruction(%s, %s)\n", target, data)
		return nil
	}
	s.SkippedEntityHandler = func(name string) error {
		fmt.Fprintf(out, "SAX.SkippedEntity(%s)\n", name)
		return nil
	}
	s.StartDTDHandler = func(name, publicID, systemID string) error {
		fmt.Fprintf(out, "SAX.StartDTD(%s, %s, %s)\n", name, nullable(publicID), nullable(systemID))
		return nil
	}
	s.EndDTDHandler = func() error {
		fmt.Fprintf(out, "SAX.EndDTD()\n")
		return nil
	}
	s.StartEntityHandler = func(name string) error {
		fmt.Fprintf(out, "SAX.StartEntity(%s)\n", name)
		return nil
	}
	s.EndEntityHandler = func(name string) error {
		fmt.Fprintf(out, "SAX.EndEntity(%s)\n", name)
		return nil
	}
	s.StartCDATAHandler = func() error {
		fmt.Fprintf(out, "SAX.StartCDATA()\n")
		return nil
	}
	s.EndCDATAHandler = func() error {
		fmt.Fprintf(out, "SAX.EndCDATA()\n")
		return nil
	}
	s.CommentHandler = func(data []byte) error {
		fmt.Fprintf(out, "SAX.Comment(%s)\n", data)
		return nil
	}
	s.NotationDeclHandler = func(name, publicID, systemID string) error {
		fmt.Fprintf(out, "SAX.NotationDecl(%s, %s, %s)\n", name, nullable(publicID), nullable(systemID))
		return nil
	}
	s.UnparsedEntityDeclHandler = func(name, publicID, systemID, notation string) error {
		fmt.Fprintf(out, "SAX.UnparsedEntityDecl(%s, %s, %s, %s)\n", name, nullable(publicID), nullable(systemID), notation)
		return nil
	}
	s.WarningHandler = func(err *ParseError) error {
		fmt.Fprintf(out, "SAX.Warning(%s)\n", strings.TrimSpace(err.Error()))
		return nil
	}
	s.ErrorHandler = func(err *ParseError) error {
		fmt.Fprintf(out, "SAX.Error(%s)\n", strings.TrimSpace(err.Error()))
		return nil
	}
	s.FatalErrorHandler = func(err *ParseError) error {
		fmt.Fprintf(out, "SAX.FatalError(%s)\n", strings.TrimSpace(err.Error()))
		return err
	}
	return s
}
