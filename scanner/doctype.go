package scanner

import "github.com/lestrrat-go/strcursor"

// doctype is a parsed <!DOCTYPE ...> directive.
type doctype struct {
	name     string
	publicID string
	systemID string
	// internal subset, without the brackets
	subset []byte
}

// declError is a malformed markup declaration. line and column are
// counted from the start of the declaration.
type declError struct {
	msg    string
	line   int
	column int
}

func (e *declError) Error() string {
	return e.msg
}

func malformed(cur *strcursor.Cursor, msg string) error {
	return &declError{msg: msg, line: cur.LineNumber(), column: cur.Column()}
}

func isBlankCh(c rune) bool {
	return c == 0x20 || (0x9 <= c && c <= 0xa) || c == 0xd
}

func isQuote(c rune) bool {
	return c == '"' || c == '\''
}

func skipBlanks(cur *strcursor.Cursor) int {
	n := 0
	for cur.HasChars(n+1) && isBlankCh(cur.Peek(n+1)) {
		n++
	}
	if n > 0 {
		cur.Advance(n)
	}
	return n
}

// skipPast advances the cursor beyond the next occurrence of s, or to
// the end of input.
func skipPast(cur *strcursor.Cursor, s string) {
	for !cur.Done() && !cur.ConsumePrefix(s) {
		cur.Advance(1)
	}
}

func isNameTerminator(c rune) bool {
	switch c {
	case '[', ']', '>', '=', '%':
		return true
	}
	return isBlankCh(c) || isQuote(c)
}

func parseName(cur *strcursor.Cursor) string {
	n := 0
	for cur.HasChars(n+1) && !isNameTerminator(cur.Peek(n+1)) {
		n++
	}
	if n == 0 {
		return ""
	}
	return cur.Consume(n)
}

func parseLiteral(cur *strcursor.Cursor) (string, bool) {
	if !cur.HasChars(1) || !isQuote(cur.Peek(1)) {
		return "", false
	}
	quote := cur.Peek(1)
	for i := 2; cur.HasChars(i); i++ {
		if cur.Peek(i) != quote {
			continue
		}
		cur.Advance(1)
		var v string
		if i > 2 {
			v = cur.Consume(i - 2)
		}
		cur.Advance(1)
		return v, true
	}
	return "", false
}

// parseExternalID parses `SYSTEM "sys"` or `PUBLIC "pub" "sys"`. found
// is false when neither keyword is present. Notation declarations may
// omit the system literal after PUBLIC, which publicOnly allows.
func parseExternalID(cur *strcursor.Cursor, publicOnly bool) (publicID, systemID string, found bool, err error) {
	switch {
	case cur.ConsumePrefix("SYSTEM"):
		if skipBlanks(cur) == 0 {
			return "", "", true, malformed(cur, "space required after SYSTEM")
		}
		sys, ok := parseLiteral(cur)
		if !ok {
			return "", "", true, malformed(cur, "system literal expected")
		}
		return "", sys, true, nil
	case cur.ConsumePrefix("PUBLIC"):
		if skipBlanks(cur) == 0 {
			return "", "", true, malformed(cur, "space required after PUBLIC")
		}
		pub, ok := parseLiteral(cur)
		if !ok {
			return "", "", true, malformed(cur, "public literal expected")
		}
		blanks := skipBlanks(cur)
		if publicOnly && (!cur.HasChars(1) || !isQuote(cur.Peek(1))) {
			return pub, "", true, nil
		}
		if blanks == 0 {
			return "", "", true, malformed(cur, "space required between the public and system literals")
		}
		sys, ok := parseLiteral(cur)
		if !ok {
			return "", "", true, malformed(cur, "system literal expected")
		}
		return pub, sys, true, nil
	}
	return "", "", false, nil
}

// parseDoctype parses the body of a directive, as returned by
// encoding/xml without the surrounding "<!" and ">". ok is false when
// the directive is not a DOCTYPE.
func parseDoctype(directive []byte) (*doctype, bool, error) {
	cur := strcursor.New(directive)
	if !cur.ConsumePrefix("DOCTYPE") {
		return nil, false, nil
	}
	if skipBlanks(cur) == 0 {
		return nil, true, malformed(cur, "space required after DOCTYPE")
	}

	dt := &doctype{name: parseName(cur)}
	if dt.name == "" {
		return nil, true, malformed(cur, "root element type expected")
	}
	skipBlanks(cur)

	pub, sys, _, err := parseExternalID(cur, false)
	if err != nil {
		return nil, true, err
	}
	dt.publicID, dt.systemID = pub, sys
	skipBlanks(cur)

	if cur.HasChars(1) && cur.Peek(1) == '[' {
		// the subset ends at the last ']'
		last := 0
		for i := 2; cur.HasChars(i); i++ {
			if cur.Peek(i) == ']' {
				last = i
			}
		}
		if last == 0 {
			return nil, true, malformed(cur, "internal subset is not terminated")
		}
		cur.Advance(1)
		if last > 2 {
			dt.subset = cur.ConsumeBytes(cur.CharLen(last - 2))
		}
		cur.Advance(1)
		skipBlanks(cur)
	}
	if !cur.Done() {
		return nil, true, malformed(cur, "unexpected content in document type declaration")
	}
	return dt, true, nil
}

type declKind int

const (
	notationDecl declKind = iota
	unparsedEntityDecl
)

// markupDecl is a notation or unparsed entity declaration.
type markupDecl struct {
	kind     declKind
	name     string
	publicID string
	systemID string
	notation string
}

// declarations is what the scanner keeps from a DTD subset.
type declarations struct {
	// internal general entities, by name
	entities map[string]string
	// notations and unparsed entities, in declaration order
	markup []markupDecl
	// general entity names seen so far; the first declaration wins
	declared map[string]struct{}
}

// parseSubset extracts entity and notation declarations from a DTD
// subset. Parameter entities, parsed external entities and every
// other kind of declaration are skipped. Malformed declarations are
// ignored.
func parseSubset(subset []byte) *declarations {
	decls := &declarations{
		entities: make(map[string]string),
		declared: make(map[string]struct{}),
	}
	cur := strcursor.New(subset)
	for !cur.Done() {
		switch {
		case cur.ConsumePrefix("<!ENTITY"):
			decls.entity(cur)
		case cur.ConsumePrefix("<!NOTATION"):
			decls.notation(cur)
		case cur.ConsumePrefix("<!--"):
			skipPast(cur, "-->")
		case cur.ConsumePrefix("<?"):
			skipPast(cur, "?>")
		default:
			cur.Advance(1)
		}
	}
	return decls
}

func (d *declarations) entity(cur *strcursor.Cursor) {
	if skipBlanks(cur) == 0 || cur.ConsumePrefix("%") {
		return
	}
	name := parseName(cur)
	if name == "" || skipBlanks(cur) == 0 {
		return
	}
	if _, dup := d.declared[name]; dup {
		return
	}

	if value, ok := parseLiteral(cur); ok {
		d.declared[name] = struct{}{}
		d.entities[name] = value
		return
	}

	pub, sys, found, err := parseExternalID(cur, false)
	if !found || err != nil {
		return
	}
	d.declared[name] = struct{}{}
	skipBlanks(cur)
	if !cur.ConsumePrefix("NDATA") || skipBlanks(cur) == 0 {
		return
	}
	if notation := parseName(cur); notation != "" {
		d.markup = append(d.markup, markupDecl{
			kind:     unparsedEntityDecl,
			name:     name,
			publicID: pub,
			systemID: sys,
			notation: notation,
		})
	}
}

func (d *declarations) notation(cur *strcursor.Cursor) {
	if skipBlanks(cur) == 0 {
		return
	}
	name := parseName(cur)
	if name == "" || skipBlanks(cur) == 0 {
		return
	}
	pub, sys, found, err := parseExternalID(cur, true)
	if !found || err != nil {
		return
	}
	d.markup = append(d.markup, markupDecl{
		kind:     notationDecl,
		name:     name,
		publicID: pub,
		systemID: sys,
	})
}

// pseudoAttributes parses the pseudo attributes of an XML declaration,
// such as `version="1.0" encoding="UTF-8"`.
func pseudoAttributes(inst []byte) map[string]string {
	attrs := make(map[string]string)
	cur := strcursor.New(inst)
	for {
		skipBlanks(cur)
		if cur.Done() {
			return attrs
		}
		name := parseName(cur)
		skipBlanks(cur)
		if name == "" || !cur.ConsumePrefix("=") {
			return attrs
		}
		skipBlanks(cur)
		v, ok := parseLiteral(cur)
		if !ok {
			return attrs
		}
		attrs[name] = v
	}
}
