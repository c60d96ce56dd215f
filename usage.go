package shortopt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

// Column widths for WriteTable, in runes.
const (
	tableDescWidth  = 20
	tableValueWidth = 10
)

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// WriteHelp writes one line per registered option: a '*' marks options that
// take a value, followed by the dashed name and its description.
func (s *Set) WriteHelp(w io.Writer) {
	if s.program != "" {
		fmt.Fprintf(w, "Usage:\n  %s [OPTIONS...]\n", s.program)
	}
	if s.description != "" {
		fmt.Fprint(w, missinggo.Unchomp(s.description))
	}
	tw := newUsageTabwriter(w)
	for _, o := range s.options {
		marker := byte(' ')
		if o.TakesArg {
			marker = '*'
		}
		fmt.Fprintf(tw, "%c -%c\t%s\n", marker, o.Name, o.Desc)
	}
	tw.Flush()
}

// Help writes the option help to stdout.
func (s *Set) Help() {
	s.WriteHelp(os.Stdout)
}

// WriteTable writes a table of every option's description, used state, kind
// and collected values. Descriptions and values are truncated with an
// ellipsis beyond a fixed width.
func (s *Set) WriteTable(w io.Writer) {
	tw := newUsageTabwriter(w)
	fmt.Fprint(tw, "Option\tDescription\tUsed\tType\tValues\n")
	fmt.Fprint(tw, "------\t-----------\t----\t----\t------\n")
	for _, o := range s.options {
		used := "no"
		if o.Used {
			used = "yes"
		}
		kind := "flag"
		if o.TakesArg {
			kind = "with-arg"
		}
		values := make([]string, 0, len(o.Values))
		for i := range iter.N(len(o.Values)) {
			values = append(values, ellipsize(o.Values[i], tableValueWidth))
		}
		fmt.Fprintf(tw, "-%c\t%s\t%s\t%s\t%s\n",
			o.Name, ellipsize(o.Desc, tableDescWidth), used, kind, strings.Join(values, ","))
	}
	tw.Flush()
}

// Verbose writes the option table to stdout.
func (s *Set) Verbose() {
	s.WriteTable(os.Stdout)
}

// Rune-safe truncation so multibyte descriptions don't get split.
func ellipsize(s string, width int) string {
	if xstrings.Len(s) <= width {
		return s
	}
	return xstrings.Slice(s, 0, width-3) + "..."
}
