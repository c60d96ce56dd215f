package shortopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecParsing(t *testing.T) {
	for _, _case := range []struct {
		spec     string
		takesArg map[byte]bool
	}{
		{"vn:f:b:p:h", map[byte]bool{'v': false, 'n': true, 'f': true, 'b': true, 'p': true, 'h': false}},
		{"ab", map[byte]bool{'a': false, 'b': false}},
		{"a:b:", map[byte]bool{'a': true, 'b': true}},
		{"vn: f: h", map[byte]bool{'v': false, 'n': true, 'f': true, 'h': false}},
		{"t:", map[byte]bool{'t': true}},
	} {
		s, err := New(_case.spec)
		require.NoError(t, err, "%q", _case.spec)
		for name, takesArg := range _case.takesArg {
			o := s.Lookup(name)
			require.NotNil(t, o, "%q in %q", rune(name), _case.spec)
			assert.EqualValues(t, takesArg, o.TakesArg, "%q in %q", rune(name), _case.spec)
		}
	}
}

func TestSpecErrors(t *testing.T) {
	for _, spec := range []string{
		"vv",     // duplicate
		"a:a",    // duplicate across groups
		":a",     // delimiter with nothing to mark
		"a::",    // stray delimiter
		"a\x00b", // NUL reserved
	} {
		_, err := New(spec)
		assert.Error(t, err, "%q", spec)
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew("xx") })
	assert.NotPanics(t, func() { MustNew("x:y") })
}

func TestNewOptions(t *testing.T) {
	s, err := NewOptions([]OptionDef{
		{'h', false, "Show help"},
		{'v', false, "Verbose mode"},
		{'n', true, "Number (int)"},
		{'f', true, "Filename (string)"},
	})
	require.NoError(t, err)
	assert.False(t, s.Lookup('h').TakesArg)
	assert.True(t, s.Lookup('n').TakesArg)
	assert.EqualValues(t, "Filename (string)", s.Lookup('f').Desc)
	assert.Nil(t, s.Lookup('x'))

	_, err = NewOptions([]OptionDef{{'a', false, ""}, {'a', true, ""}})
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	s := MustNew("n:")
	s.Describe('n', KindInt, "a number")
	assert.EqualValues(t, KindInt, s.Lookup('n').Kind)
	assert.EqualValues(t, "a number", s.Lookup('n').Desc)
	assert.Panics(t, func() { s.Describe('x', KindInt, "never registered") })
}

func TestReset(t *testing.T) {
	s := MustNew("vt:")
	s.Describe('t', KindInt, "")
	require.NoError(t, s.Track([]string{"-v", "-t", "1", "-t", "2"}))
	require.NotNil(t, s.Used('v'))
	require.EqualValues(t, 2, s.Len('t'))

	s.Reset()
	assert.Nil(t, s.Used('v'))
	assert.EqualValues(t, 0, s.Len('t'))
	assert.Empty(t, s.Values('t'))
	// Registrations and descriptions survive a reset.
	assert.EqualValues(t, KindInt, s.Lookup('t').Kind)

	require.NoError(t, s.Track([]string{"-t3"}))
	var n int
	require.True(t, s.First('t', &n))
	assert.EqualValues(t, 3, n)
	assert.EqualValues(t, 1, s.Len('t'))
}

func TestKindString(t *testing.T) {
	for _, _case := range []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "none"},
		{KindString, "string"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindDuration, "duration"},
		{KindBytes, "bytes"},
		{Kind(99), "unknown"},
	} {
		assert.EqualValues(t, _case.expected, _case.kind.String())
	}
}
