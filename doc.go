// Package shortopt parses single-character command-line options, in the
// style of classic getopt but with per-option value collection. Options are
// registered up front, either from a compact spec string or an explicit
// list, then a single pass over the argument vector records which options
// appeared and gathers their values.
//
// For example:
//  s := shortopt.MustNew("vn:f:h")
//  s.Describe('v', shortopt.KindNone, "verbose output")
//  s.Describe('n', shortopt.KindInt, "number of workers")
//  s.Describe('f', shortopt.KindString, "input file")
//  s.Describe('h', shortopt.KindNone, "show help")
//  if err := s.Track(os.Args[1:]); err != nil {
//      // unknown option, or a value was missing
//  }
//  var n int
//  if s.First('n', &n) {
//      // -n was given with a usable value
//  }
//
// In the spec string a character followed by ':' takes a value; spaces may
// separate groups and are ignored. Options combine after a single dash
// (-vn), and a value may be attached (-n42) or given as the next argument
// (-n 42). Only the last option of a combined group may take a value.
// Repeating an option (-t 1 -t 2) collects a value per occurrence,
// retrieved by index with Get.
package shortopt
