package internal

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const usageText = `Usage:
  search <pattern> -d <directory> [options]

Arguments:
  <pattern>              File name or part of the file name to search for

Options:
  -d <directory>         Root directory to search in (required)
  --max-depth <n>        Do not descend more than n directory levels below the root
  --max-results <n>      Stop after n files were found
  -h, --help             Display this help message
`

// Reporter writes search output the way the CLI prints it.
type Reporter struct {
	out   io.Writer
	index *color.Color
}

// NewReporter writes to out; colored enables the cyan match index.
func NewReporter(out io.Writer, colored bool) *Reporter {
	idx := color.New(color.FgCyan)
	if colored {
		idx.EnableColor()
	} else {
		idx.DisableColor()
	}
	return &Reporter{out: out, index: idx}
}

func (r *Reporter) Header(req SearchRequest) {
	fmt.Fprintf(r.out, "Search pattern: %s\nSearch directory: %s\n\n", req.Pattern(), req.Root())
}

// Match prints "[<index>]<path>".
func (r *Reporter) Match(m MatchResult) {
	fmt.Fprintf(r.out, "%s%s\n", r.index.Sprintf("[%d]", m.Index), m.Path)
}

func (r *Reporter) Summary(s SearchSummary) {
	fmt.Fprintf(r.out, "\nSearch summary:\n  Files found: %d\n  Time elapsed: %s\n", s.MatchCount, FormatElapsed(s.Elapsed))
}

func (r *Reporter) Usage() {
	fmt.Fprint(r.out, usageText+"\n")
}
