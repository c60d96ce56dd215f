package shortopt

// Kind selects how Get converts an option's raw values. KindNone means no
// conversion was registered, and Get always misses for such options.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindDuration
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDuration:
		return "duration"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}
