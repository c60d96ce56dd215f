package shortopt

import "io"

type setOpt func(s *Set)

// Sets the program name shown in usage and diagnostics.
func Program(program string) setOpt {
	return func(s *Set) {
		s.program = program
	}
}

// Writes a program description above the option help.
func Description(desc string) setOpt {
	return func(s *Set) {
		s.description = desc
	}
}

// Sets the writer MustTrack diagnostics go to. Defaults to os.Stderr.
func Output(w io.Writer) setOpt {
	return func(s *Set) {
		s.output = w
	}
}
