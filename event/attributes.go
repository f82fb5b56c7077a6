package event

// Attribute is a single attribute of a start element event.
type Attribute struct {
	Name      QName
	Type      string
	Value     string
	Specified bool
	Augs      Augmentations
}

// Attributes is the ordered attribute list of a start element event.
// A nil *Attributes behaves like an empty list.
type Attributes struct {
	list []Attribute
}

func NewAttributes(attrs ...Attribute) *Attributes {
	return &Attributes{list: attrs}
}

func (a *Attributes) Add(attr Attribute) int {
	a.list = append(a.list, attr)
	return len(a.list) - 1
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

func (a *Attributes) At(i int) *Attribute {
	return &a.list[i]
}

// Index returns the index of the attribute with the given raw name,
// or -1.
func (a *Attributes) Index(qname string) int {
	for i := range a.Len() {
		if a.list[i].Name.RawName == qname {
			return i
		}
	}
	return -1
}

// IndexNS returns the index of the attribute with the given
// namespace URI and local name, or -1.
func (a *Attributes) IndexNS(uri, local string) int {
	for i := range a.Len() {
		n := a.list[i].Name
		if n.URI == uri && n.LocalPart == local {
			return i
		}
	}
	return -1
}

func (a *Attributes) Reset() {
	if a == nil {
		return
	}
	a.list = a.list[:0]
}
