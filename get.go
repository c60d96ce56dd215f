package shortopt

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Marshaler lets a destination take over conversion of a raw option value.
// Destinations implementing it are used ahead of the registered Kind.
type Marshaler interface {
	Marshal(in string) error
}

// Spellings accepted as true by KindBool, matched case-sensitively.
func boolValue(raw string) bool {
	switch raw {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

// Get converts the i-th collected value of name into dst and reports whether
// a value was produced. It misses, leaving dst alone, when the name is
// unknown, the option wasn't used or takes no value, no Kind was registered,
// i is out of range, or the conversion fails. Calling Get repeatedly with an
// increasing index until it misses visits every value in order.
func (s *Set) Get(name byte, i int, dst interface{}) bool {
	o := s.index[name]
	if o == nil || !o.Used || !o.TakesArg || o.Kind == KindNone || i < 0 || i >= len(o.Values) {
		return false
	}
	raw := o.Values[i]
	if m, ok := dst.(Marshaler); ok {
		return m.Marshal(raw) == nil
	}
	switch o.Kind {
	case KindString:
		p, ok := dst.(*string)
		if !ok {
			return false
		}
		*p = raw
	case KindBool:
		p, ok := dst.(*bool)
		if !ok {
			return false
		}
		*p = boolValue(raw)
	case KindDuration:
		p, ok := dst.(*time.Duration)
		if !ok {
			return false
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return false
		}
		*p = d
	case KindBytes:
		n, err := humanize.ParseBytes(raw)
		if err != nil {
			return false
		}
		switch p := dst.(type) {
		case *uint64:
			*p = n
		case *int64:
			*p = int64(n)
		default:
			return false
		}
	default:
		// KindInt and KindFloat scan into whatever numeric type dst points
		// at.
		n, err := fmt.Sscan(raw, dst)
		if err != nil || n != 1 {
			return false
		}
	}
	return true
}

// First is Get for the common single-value case, index 0.
func (s *Set) First(name byte, dst interface{}) bool {
	return s.Get(name, 0, dst)
}
