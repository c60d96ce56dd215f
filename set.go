package shortopt

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Set owns the registered options for one parsing session. Methods on a Set
// are not safe for concurrent use; independent Sets are.
type Set struct {
	program     string
	description string
	output      io.Writer

	options []*Option
	index   map[byte]*Option
}

func (s *Set) add(o *Option) error {
	if o.Name == 0 {
		return errors.New("option name must not be NUL")
	}
	if _, ok := s.index[o.Name]; ok {
		return errors.Errorf("option %q defined more than once", rune(o.Name))
	}
	s.options = append(s.options, o)
	s.index[o.Name] = o
	return nil
}

// Lookup returns the option registered under name, or nil.
func (s *Set) Lookup(name byte) *Option {
	return s.index[name]
}

// Describe attaches a conversion kind and help text to a registered option.
// Describing an unknown name is a bug in the embedding program and panics.
func (s *Set) Describe(name byte, kind Kind, desc string) {
	o := s.index[name]
	if o == nil {
		panic(logicError{fmt.Sprintf("describe unknown option %q", rune(name))})
	}
	o.Kind = kind
	o.Desc = desc
}

// Used returns the option if it appeared during tracking, else nil.
func (s *Set) Used(name byte) *Option {
	if o := s.index[name]; o != nil && o.Used {
		return o
	}
	return nil
}

// Len returns how many values were collected for name, 0 for unknown names.
func (s *Set) Len(name byte) int {
	if o := s.index[name]; o != nil {
		return len(o.Values)
	}
	return 0
}

// Values returns the raw collected values for name in command-line order,
// nil when there are none.
func (s *Set) Values(name byte) []string {
	if o := s.index[name]; o != nil {
		return o.Values
	}
	return nil
}

// Reset clears all tracked state so the Set can track another argument
// vector. Registered options and their descriptions are kept.
func (s *Set) Reset() {
	for _, o := range s.options {
		o.Used = false
		o.Values = nil
	}
}
