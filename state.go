package xni

// State is the lifecycle state of a Parser.
type State int

const (
	// StateIdle means no parse is running. A new parse may start.
	StateIdle State = iota
	// StateParsing means a parse is running. Parse and some property
	// changes fail until it returns.
	StateParsing
	// StateFaulted means the last parse failed. A new parse may start.
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateParsing:
		return "Parsing"
	case StateFaulted:
		return "Faulted"
	}
	return "State(?)"
}
