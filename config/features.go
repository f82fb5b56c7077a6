package config

// Features is the bit register behind the boolean named parameters.
type Features uint16

const (
	Namespaces Features = 1 << iota
	DatatypeNormalization
	Entities
	CDATA
	SplitCDATA
	Comments
	Validate
	_
	WellFormed
	NamespaceDeclarations
)

const (
	// InfosetTrue is the set of flags that "infoset" turns on.
	InfosetTrue = Namespaces | Comments | WellFormed | NamespaceDeclarations
	// InfosetFalse is the set of flags that "infoset" turns off.
	InfosetFalse = Entities | DatatypeNormalization | CDATA
	InfosetMask  = InfosetTrue | InfosetFalse

	DefaultFeatures = Namespaces | Entities | Comments | CDATA | SplitCDATA | WellFormed | NamespaceDeclarations
)

func (f *Features) Set(n Features) {
	*f = *f | n
}

func (f *Features) Clear(n Features) {
	*f = *f &^ n
}

// Apply sets or clears n depending on state.
func (f *Features) Apply(n Features, state bool) {
	if state {
		f.Set(n)
		return
	}
	f.Clear(n)
}

func (f Features) IsSet(n Features) bool {
	return f&n != 0
}

// SetDatatypeNormalization toggles DatatypeNormalization. Turning it
// on also turns on Validate.
func (f *Features) SetDatatypeNormalization(state bool) {
	f.Apply(DatatypeNormalization, state)
	if state {
		f.Set(Validate)
	}
}

// SetInfoset turns on every flag of InfosetTrue and turns off every
// flag of InfosetFalse. SetInfoset(false) does nothing.
func (f *Features) SetInfoset(state bool) {
	if !state {
		return
	}
	f.Set(InfosetTrue)
	f.Clear(InfosetFalse)
}

// Infoset reports whether the register is exactly in the state that
// SetInfoset(true) produces, as far as the infoset flags go.
func (f Features) Infoset() bool {
	return f&InfosetMask == InfosetTrue
}
