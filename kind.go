package cmdline

// Kind identifies the concrete variant of a parameter. Each concrete type
// answers a fixed kind that never depends on runtime state.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindChoice
	KindFlag
	KindInteger
	KindString
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindFlag:
		return "flag"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindStringList:
		return "stringlist"
	default:
		return "invalid"
	}
}
