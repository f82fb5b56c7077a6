package event

// Position is a Locator snapshot. The zero value reports no position.
type Position struct {
	Public   string
	Literal  string
	Expanded string
	Line     int
	Column   int
	Enc      string
	Version  string
}

var _ Locator = (*Position)(nil)

func (p *Position) PublicID() string         { return p.Public }
func (p *Position) LiteralSystemID() string  { return p.Literal }
func (p *Position) ExpandedSystemID() string { return p.Expanded }
func (p *Position) LineNumber() int          { return p.Line }
func (p *Position) ColumnNumber() int        { return p.Column }
func (p *Position) Encoding() string         { return p.Enc }
func (p *Position) XMLVersion() string       { return p.Version }

// Snapshot copies the current state of loc.
func Snapshot(loc Locator) *Position {
	if loc == nil {
		return &Position{}
	}
	return &Position{
		Public:   loc.PublicID(),
		Literal:  loc.LiteralSystemID(),
		Expanded: loc.ExpandedSystemID(),
		Line:     loc.LineNumber(),
		Column:   loc.ColumnNumber(),
		Enc:      loc.Encoding(),
		Version:  loc.XMLVersion(),
	}
}
