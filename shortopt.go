package shortopt

import (
	"os"

	"github.com/pkg/errors"
)

// The character that marks the preceding spec character as taking a value.
const specDelim = ':'

// New builds a Set from a compact spec string. Each character registers an
// option of that name; a character immediately followed by ':' takes a
// value. Spaces separate groups and are otherwise ignored. Duplicate names
// are an error.
func New(spec string, opts ...setOpt) (*Set, error) {
	s := newSet(opts)
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c == ' ' {
			continue
		}
		if c == specDelim {
			return nil, errors.Errorf("spec %q: %q with no preceding option", spec, specDelim)
		}
		takesArg := i+1 < len(spec) && spec[i+1] == specDelim
		if takesArg {
			i++
		}
		if err := s.add(&Option{Name: c, TakesArg: takesArg}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is New, panicking on a bad spec.
func MustNew(spec string, opts ...setOpt) *Set {
	s, err := New(spec, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewOptions builds a Set from an explicit list of option definitions,
// registered in order.
func NewOptions(defs []OptionDef, opts ...setOpt) (*Set, error) {
	s := newSet(opts)
	for _, d := range defs {
		if err := s.add(&Option{Name: d.Name, TakesArg: d.TakesArg, Desc: d.Desc}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newSet(opts []setOpt) *Set {
	s := &Set{
		index:  make(map[byte]*Option),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
