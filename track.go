package shortopt

import (
	"fmt"
	"os"
	"strings"
)

// Track scans args (the program-stripped vector, os.Args[1:]) left to right,
// marking options used and collecting their values. Tokens not starting with
// '-' are positionals and are skipped, not collected. An unknown option or a
// missing value returns an error; mutations made before the failure stand.
func (s *Set) Track(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		// A token is a run of combined option names. Scanning stops at the
		// first one that takes a value: any trailing bytes are its value,
		// otherwise the value must be the next token.
		valueInNextArg := false
		for j := 1; j < len(arg); j++ {
			o := s.index[arg[j]]
			if o == nil {
				return userError{fmt.Sprintf("unknown option: %q", "-"+string(arg[j]))}
			}
			o.Used = true
			if o.TakesArg {
				if j+1 < len(arg) {
					o.Values = append(o.Values, arg[j+1:])
				} else {
					valueInNextArg = true
				}
				break
			}
		}

		if valueInNextArg {
			i++
			if i >= len(args) {
				return userError{fmt.Sprintf("option %q requires a value but none was supplied", arg)}
			}
			// At most one option in the token takes a value, since the scan
			// above stopped at it.
			for j := 1; j < len(arg); j++ {
				if o := s.index[arg[j]]; o != nil && o.TakesArg {
					o.Values = append(o.Values, args[i])
					break
				}
			}
		}
	}
	return nil
}

// TrackArgv is Track for a full argument vector, skipping argv[0].
func (s *Set) TrackArgv(argv []string) error {
	if len(argv) == 0 {
		return s.Track(nil)
	}
	return s.Track(argv[1:])
}

// MustTrack is Track, printing the diagnostic to the Set's output and
// exiting with status 2 on bad usage.
func (s *Set) MustTrack(args []string) {
	err := s.Track(args)
	if err != nil {
		if s.program != "" {
			fmt.Fprintf(s.output, "%s: %s\n", s.program, err)
		} else {
			fmt.Fprintf(s.output, "%s\n", err)
		}
		os.Exit(2)
	}
}
